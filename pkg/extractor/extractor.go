package extractor

import (
	"net/url"
)

// Category identifies the source region a candidate was discovered in.
// Classification is purely by region: a name found in a form never
// lands in the script bucket, even if the same text appears there too.
type Category int

const (
	CategoryQuery Category = iota
	CategoryPath
	CategoryFormVisible
	CategoryFormHidden
	CategoryScript
	CategoryComment
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryQuery,
	CategoryPath,
	CategoryFormVisible,
	CategoryFormHidden,
	CategoryScript,
	CategoryComment,
}

func (c Category) String() string {
	switch c {
	case CategoryQuery:
		return "URL Query Parameters"
	case CategoryPath:
		return "Potential Path/Route Parameters"
	case CategoryFormVisible:
		return "Form Parameters (Visible)"
	case CategoryFormHidden:
		return "Form Parameters (Hidden)"
	case CategoryScript:
		return "JavaScript-like Parameters"
	case CategoryComment:
		return "Comment Parameters"
	}
	return "Unknown"
}

// PageSource is the immutable input to one extraction run: the URL the
// page was retrieved from and its raw HTML body. Fetching is the
// caller's job; the engine never touches the network.
type PageSource struct {
	URL  *url.URL
	HTML string
}

// Candidate is a single discovered parameter name.
type Candidate struct {
	Name     string   `json:"name"`
	Category Category `json:"-"`
}

// Findings holds the categorized result of one extraction run. Within
// each category names are distinct and kept in first-seen order.
type Findings struct {
	buckets map[Category][]string
	seen    map[Category]map[string]bool
}

func newFindings() *Findings {
	return &Findings{
		buckets: make(map[Category][]string),
		seen:    make(map[Category]map[string]bool),
	}
}

// add records a name under a category, dropping empty names and
// per-category duplicates (exact, case-sensitive match).
func (f *Findings) add(cat Category, name string) {
	if name == "" {
		return
	}
	if f.seen[cat] == nil {
		f.seen[cat] = make(map[string]bool)
	}
	if f.seen[cat][name] {
		return
	}
	f.seen[cat][name] = true
	f.buckets[cat] = append(f.buckets[cat], name)
}

func (f *Findings) addAll(cat Category, names []string) {
	for _, n := range names {
		f.add(cat, n)
	}
}

// Names returns the ordered, deduplicated names for a category.
func (f *Findings) Names(cat Category) []string {
	return f.buckets[cat]
}

// Total counts names across every category.
func (f *Findings) Total() int {
	total := 0
	for _, names := range f.buckets {
		total += len(names)
	}
	return total
}

// Options tunes the heuristic knobs. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// MinCommentTokenLen is the shortest comment token worth reporting.
	MinCommentTokenLen int
	// MaxHarvestedURLs caps how many page-internal URLs the path
	// extractor will analyze.
	MaxHarvestedURLs int
}

func DefaultOptions() Options {
	return Options{
		MinCommentTokenLen: 3,
		MaxHarvestedURLs:   200,
	}
}

// Extract runs every extractor against the page with default options
// and assembles the categorized findings. It is a pure function: same
// page in, same findings out. Extractors are independent and never
// fail; malformed markup degrades to fewer candidates, never to an
// error.
func Extract(page PageSource) *Findings {
	return ExtractWithOptions(page, DefaultOptions())
}

// ExtractWithOptions is Extract with explicit heuristic knobs.
func ExtractWithOptions(page PageSource, opts Options) *Findings {
	f := newFindings()

	f.addAll(CategoryQuery, QueryParams(page.URL))
	f.addAll(CategoryPath, PathParams(page, opts.MaxHarvestedURLs))

	visible, hidden := FormParams(page.HTML)
	f.addAll(CategoryFormVisible, visible)
	f.addAll(CategoryFormHidden, hidden)

	f.addAll(CategoryScript, ScriptVars(page.HTML))
	f.addAll(CategoryComment, CommentVars(page.HTML, opts.MinCommentTokenLen))

	return f
}
