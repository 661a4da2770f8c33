package extractor

import "strings"

// CommentVars scans <!-- ... --> spans for identifier-shaped tokens.
// Tokens shorter than minLen or listed in the common-word stopword set
// are dropped; everything else is reported, including generic words
// that happen to pass the filter. HTML comments do not nest, so a plain
// span scan is enough; a stray unterminated "<!--" simply yields no
// span.
func CommentVars(html string, minLen int) []string {
	var names []string
	for _, m := range reComment.FindAllStringSubmatch(html, -1) {
		for _, tok := range reCommentToken.FindAllString(m[1], -1) {
			if len(tok) < minLen {
				continue
			}
			if commentStopwords[strings.ToLower(tok)] {
				continue
			}
			names = append(names, tok)
		}
	}
	return names
}
