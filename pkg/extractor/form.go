package extractor

import "strings"

// FormParams extracts input names from every <form> block, split into
// visible and hidden lists. An <input> whose type attribute equals
// "hidden" (case-insensitive) is hidden; everything else, including
// <select> and <textarea> and inputs with no type at all, is visible.
// Elements without a name attribute are skipped.
//
// Form blocks are located lexically: an unclosed <form> is scanned up
// to the next <form> or end of document, so one broken form never takes
// down extraction of the others.
func FormParams(html string) (visible, hidden []string) {
	for _, block := range formBlocks(html) {
		for _, tag := range reFormField.FindAllStringSubmatch(block, -1) {
			element := strings.ToLower(tag[1])
			full := tag[0]

			nameMatch := reNameAttr.FindStringSubmatch(full)
			if nameMatch == nil {
				continue
			}
			name := strings.TrimSpace(attrValue(nameMatch))
			if name == "" {
				continue
			}

			if element == "input" && isHiddenInput(full) {
				hidden = append(hidden, name)
			} else {
				visible = append(visible, name)
			}
		}
	}
	return visible, hidden
}

func isHiddenInput(tag string) bool {
	m := reTypeAttr.FindStringSubmatch(tag)
	if m == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(attrValue(m)), "hidden")
}

// formBlocks slices the document into independent form regions. Each
// region runs from a <form> open tag to its </form>, or to the next
// <form> (or EOF) when the close tag is missing.
func formBlocks(html string) []string {
	opens := reFormOpen.FindAllStringIndex(html, -1)
	if opens == nil {
		return nil
	}

	var blocks []string
	for i, open := range opens {
		start := open[1]
		end := len(html)
		if i+1 < len(opens) {
			end = opens[i+1][0]
		}
		if close := reFormClose.FindStringIndex(html[start:end]); close != nil {
			end = start + close[0]
		}
		blocks = append(blocks, html[start:end])
	}
	return blocks
}
