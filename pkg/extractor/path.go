package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"parambuster/pkg/analyzer"
)

var reAlphaSegment = regexp.MustCompile(`^[A-Za-z]+$`)

// PathParams flags path segments that look like parameter *values* and
// derives a candidate name for each: numeric, UUID and hash-shaped
// segments hint an id, hyphen/underscore slugs hint a slug, and the
// preceding static segment names the hint when it is informative
// ("/user/42" yields "user_id"). Explicit route placeholders like
// "{id}" or ":slug" report the placeholder identifier itself.
//
// Besides the page's own URL, URLs found in the page (href and action
// attributes, URL-shaped string literals in scripts) are resolved
// against the base URL and classified the same way. All of this is
// heuristic: false positives are expected, and unparseable URLs or
// paths simply contribute nothing.
func PathParams(page PageSource, maxURLs int) []string {
	var names []string

	urls := []string{}
	if page.URL != nil {
		urls = append(urls, page.URL.String())
	}
	urls = append(urls, harvestURLs(page, maxURLs)...)

	processed := make(map[string]bool)
	for _, raw := range urls {
		if processed[raw] {
			continue
		}
		processed[raw] = true

		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		names = append(names, classifyPath(u.Path)...)
	}
	return names
}

// classifyPath walks one path's segments and returns a name hint for
// each value-shaped segment.
func classifyPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}

	var names []string
	for i, seg := range segs {
		if m := rePlaceholder.FindStringSubmatch(seg); m != nil && m[1] != seg {
			names = append(names, m[1])
			continue
		}

		switch analyzer.DetectType(seg) {
		case analyzer.TypeNumeric:
			// Single digits are as likely to be pagination noise as
			// resource ids; require at least two.
			if len(seg) > 1 {
				names = append(names, hintFor(segs, i, "id"))
			}
		case analyzer.TypeUUID, analyzer.TypeMD5, analyzer.TypeSHA1:
			names = append(names, hintFor(segs, i, "id"))
		case analyzer.TypeSlug:
			if len(seg) > 2 && !staticSegments[strings.ToLower(seg)] {
				names = append(names, hintFor(segs, i, "slug"))
			}
		}
	}
	return names
}

// hintFor builds the candidate name for a value segment from its
// preceding static neighbor: "/product/blue-shirt-9" -> "product_slug",
// "/users/42" -> "user_id". Without an informative neighbor the generic
// suffix stands alone.
func hintFor(segs []string, i int, suffix string) string {
	if i > 0 {
		prev := strings.ToLower(segs[i-1])
		if reAlphaSegment.MatchString(prev) && !staticSegments[prev] {
			return singular(prev) + "_" + suffix
		}
	}
	return suffix
}

func singular(word string) string {
	if len(word) > 2 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}

// harvestURLs collects URLs referenced by the page itself, resolved
// against the base URL. Protocol-relative and fragment-only references
// are skipped.
func harvestURLs(page PageSource, maxURLs int) []string {
	if page.URL == nil || page.HTML == "" || maxURLs <= 0 {
		return nil
	}

	var out []string
	add := func(ref string) bool {
		if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
			return true
		}
		rel, err := url.Parse(ref)
		if err != nil {
			return true
		}
		out = append(out, page.URL.ResolveReference(rel).String())
		return len(out) < maxURLs
	}

	for _, m := range reHrefAttr.FindAllStringSubmatch(page.HTML, -1) {
		if !add(attrValue(m)) {
			return out
		}
	}

	for _, block := range inlineScripts(page.HTML) {
		for _, m := range reScriptPath.FindAllStringSubmatch(block, -1) {
			lit := m[1]
			// Only path-shaped literals: absolute or multi-segment
			// relative references, not arbitrary short strings.
			if !strings.Contains(lit, "/") {
				continue
			}
			if !add(lit) {
				return out
			}
		}
	}
	return out
}
