package extractor

import "regexp"

// Shared pattern bank. Everything here is deliberately lexical: a real
// HTML or JS parser would be stricter than the messy markup this tool
// has to chew through, and false positives are acceptable in recon
// output.
var (
	// HTML regions
	reFormOpen   = regexp.MustCompile(`(?i)<form\b`)
	reFormClose  = regexp.MustCompile(`(?i)</form\s*>`)
	reFormField  = regexp.MustCompile(`(?is)<(input|select|textarea)\b[^>]*>`)
	reScriptTag  = regexp.MustCompile(`(?is)<script\b([^>]*)>(.*?)</script\s*>`)
	reComment    = regexp.MustCompile(`(?s)<!--(.*?)-->`)
	reNameAttr   = regexp.MustCompile(`(?i)\bname\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	reTypeAttr   = regexp.MustCompile(`(?i)\btype\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	reSrcAttr    = regexp.MustCompile(`(?i)\bsrc\s*=`)
	reHrefAttr   = regexp.MustCompile(`(?i)\b(?:href|action)\s*=\s*(?:"([^"]+)"|'([^']+)')`)
	reScriptPath = regexp.MustCompile(`["'](/?[a-zA-Z0-9_\-./]{3,})["']`)

	// Script heuristics
	reAssign    = regexp.MustCompile(`(?:^|[^!<>=+\-*/%&|\w$])([A-Za-z_$][A-Za-z0-9_$]*)\s*=(?:[^=>]|$)`)
	reObjectKey = regexp.MustCompile(`(?:^|[{,(]|\s)(?:([A-Za-z_$][A-Za-z0-9_$]*)|"([^"]+)"|'([^']+)')\s*:`)
	reStringLit = regexp.MustCompile(`"[^"]*"|'[^']*'`)

	// Identifier tokens inside comments
	reCommentToken = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\b`)

	// Route placeholders like {id} or :slug
	rePlaceholder = regexp.MustCompile(`^[{:]([A-Za-z_$][A-Za-z0-9_$]*)}?$`)
)

// attrValue picks the captured group from a quoted-or-bare attribute
// match produced by reNameAttr/reTypeAttr/reHrefAttr.
func attrValue(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// jsReserved holds scripting-language keywords that match the
// assignment and object-key patterns but can never be application
// parameters.
var jsReserved = map[string]bool{
	"var": true, "let": true, "const": true, "function": true,
	"return": true, "if": true, "else": true, "for": true,
	"while": true, "do": true, "switch": true, "case": true,
	"default": true, "break": true, "continue": true, "new": true,
	"delete": true, "typeof": true, "instanceof": true, "void": true,
	"in": true, "of": true, "this": true, "true": true, "false": true,
	"null": true, "undefined": true, "try": true, "catch": true,
	"finally": true, "throw": true, "class": true, "extends": true,
	"super": true, "import": true, "export": true, "yield": true,
	"async": true, "await": true, "static": true, "get": true,
	"set": true, "window": true, "document": true,
}

// commentStopwords filters everyday English and literal keywords out of
// comment scans. Short generic words that are not listed here (for
// example "set") still pass the length filter and are reported; that is
// intentional recall-over-precision behavior.
var commentStopwords = map[string]bool{
	"this": true, "that": true, "the": true, "and": true, "or": true,
	"not": true, "for": true, "in": true, "with": true, "is": true,
	"of": true, "to": true, "a": true, "an": true, "on": true,
	"at": true, "by": true, "from": true, "as": true, "it": true,
	"he": true, "she": true, "we": true, "they": true, "you": true,
	"my": true, "your": true, "his": true, "her": true, "our": true,
	"their": true, "its": true, "up": true, "down": true, "left": true,
	"right": true, "true": true, "false": true, "null": true,
	"undefined": true, "todo": true, "fixme": true, "end": true,
	"note": true,
}

// staticSegments are path pieces that are route keywords, never
// parameter values.
var staticSegments = map[string]bool{
	"api": true, "v1": true, "v2": true, "v3": true, "css": true,
	"js": true, "img": true, "images": true, "static": true,
	"assets": true, "admin": true, "dashboard": true, "new": true,
	"edit": true, "delete": true, "view": true, "index": true,
	"home": true, "search": true, "login": true, "logout": true,
	"fonts": true, "media": true, "public": true,
}
