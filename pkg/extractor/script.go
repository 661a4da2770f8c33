package extractor

import (
	"sort"
	"strings"
)

// ScriptVars scans inline <script> blocks for identifiers that look
// like application parameters. Two lexical heuristics are unioned, in
// first-appearance order:
//
//   - assignments: an identifier followed by a single "=" (not ==, !=,
//     <=, >=), excluding matches inside string literals and // comments
//   - object keys: an identifier or quoted string followed by ":" while
//     brace depth says we are inside an object literal
//
// Scripting-language keywords are excluded from both. This is a lexical
// scan, not a parser; lines with unbalanced quotes are skipped for
// heuristic purposes, never fatally. External scripts (src=...) carry
// no inline content and are ignored.
func ScriptVars(html string) []string {
	var names []string
	for _, block := range inlineScripts(html) {
		names = append(names, scanScript(block)...)
	}
	return names
}

// inlineScripts returns the body of every <script> block that has no
// src attribute. An unterminated script tag yields no block.
func inlineScripts(html string) []string {
	var blocks []string
	for _, m := range reScriptTag.FindAllStringSubmatch(html, -1) {
		attrs, body := m[1], m[2]
		if reSrcAttr.MatchString(attrs) {
			continue
		}
		if strings.TrimSpace(body) == "" {
			continue
		}
		blocks = append(blocks, body)
	}
	return blocks
}

// hit pairs a candidate with its position so the two heuristics can be
// merged in appearance order.
type hit struct {
	pos  int
	name string
}

func scanScript(body string) []string {
	var names []string
	depth := 0

	for _, line := range strings.Split(body, "\n") {
		if strings.Count(line, `"`)%2 != 0 || strings.Count(line, `'`)%2 != 0 {
			// Unbalanced quotes: anything on this line is suspect.
			continue
		}

		masked := maskStrings(line)
		code := masked
		if idx := strings.Index(masked, "//"); idx >= 0 {
			code = masked[:idx]
		}

		var hits []hit

		for _, m := range reAssign.FindAllStringSubmatchIndex(code, -1) {
			name := code[m[2]:m[3]]
			if !jsReserved[name] {
				hits = append(hits, hit{pos: m[2], name: name})
			}
		}

		inObject := depth > 0 || strings.Contains(code, "{")
		if inObject {
			for _, m := range reObjectKey.FindAllStringSubmatchIndex(code, -1) {
				if m[2] < 0 {
					continue
				}
				name := code[m[2]:m[3]]
				if !jsReserved[name] {
					hits = append(hits, hit{pos: m[2], name: name})
				}
			}
			hits = append(hits, quotedKeys(line, code)...)
		}

		sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
		for _, h := range hits {
			names = append(names, h.name)
		}

		depth += strings.Count(code, "{") - strings.Count(code, "}")
		if depth < 0 {
			depth = 0
		}
	}
	return names
}

// quotedKeys finds string-literal object keys ("key": ...) on a line.
// The masked copy locates the literal spans; the original line supplies
// their content.
func quotedKeys(line, code string) []hit {
	var hits []hit
	for _, span := range reStringLit.FindAllStringIndex(code, -1) {
		if span[1] >= len(code) {
			continue
		}
		rest := strings.TrimLeft(code[span[1]:], " \t")
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		if span[1] > len(line) {
			continue
		}
		name := strings.TrimSpace(line[span[0]+1 : span[1]-1])
		if name != "" && !jsReserved[name] {
			hits = append(hits, hit{pos: span[0], name: name})
		}
	}
	return hits
}

// maskStrings blanks the contents of string literals, preserving
// length so match positions line up with the original line.
func maskStrings(line string) string {
	return reStringLit.ReplaceAllStringFunc(line, func(s string) string {
		if len(s) < 2 {
			return s
		}
		return s[:1] + strings.Repeat(" ", len(s)-2) + s[len(s)-1:]
	})
}
