package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"parambuster/pkg/extractor"
)

// CategoryResult is one category's slice of a page's findings.
type CategoryResult struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Names    []string `json:"names"`
}

// PageResult holds the complete findings for one scanned page.
type PageResult struct {
	Target        string           `json:"target"`
	Total         int              `json:"total"`
	Categories    []CategoryResult `json:"categories"`
	LikelyTargets []string         `json:"likely_targets,omitempty"`
}

// Report is the top-level document written to disk.
type Report struct {
	ScanTime time.Time    `json:"scan_time"`
	Results  []PageResult `json:"results"`
}

// Reporter accumulates per-page results and renders them as JSON or
// Markdown. Pages are reported independently; names are never merged
// across pages.
type Reporter struct {
	Results []PageResult
	Format  string
}

func NewReporter(format string) *Reporter {
	return &Reporter{
		Format: format,
	}
}

// AddResult records one page's findings. Every category is included,
// empty ones with a zero count, so consumers can rely on a fixed
// category list.
func (r *Reporter) AddResult(target string, f *extractor.Findings, likely []string) {
	result := PageResult{
		Target:        target,
		Total:         f.Total(),
		LikelyTargets: likely,
	}
	for _, cat := range extractor.Categories {
		names := f.Names(cat)
		if names == nil {
			names = []string{}
		}
		result.Categories = append(result.Categories, CategoryResult{
			Category: cat.String(),
			Count:    len(names),
			Names:    names,
		})
	}
	r.Results = append(r.Results, result)
}

// GenerateReport writes the accumulated results to a file.
func (r *Reporter) GenerateReport(filename string) error {
	report := Report{
		ScanTime: time.Now(),
		Results:  r.Results,
	}

	var data []byte
	var err error
	switch r.Format {
	case "markdown":
		data = []byte(renderMarkdown(report))
	default:
		data, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
	}

	// Security: Use 0600 permissions to restrict access to the file owner
	return os.WriteFile(filename, data, 0600)
}

func renderMarkdown(report Report) string {
	var b strings.Builder
	b.WriteString("# Parameter Discovery Report\n\n")
	fmt.Fprintf(&b, "Scan time: %s\n\n", report.ScanTime.Format(time.RFC3339))

	for _, res := range report.Results {
		fmt.Fprintf(&b, "## %s\n\n", res.Target)
		fmt.Fprintf(&b, "Total unique parameters: %d\n\n", res.Total)

		for _, cat := range res.Categories {
			fmt.Fprintf(&b, "### %s (%d found)\n\n", cat.Category, cat.Count)
			if cat.Count == 0 {
				b.WriteString("_(none)_\n\n")
				continue
			}
			for _, name := range cat.Names {
				fmt.Fprintf(&b, "- `%s`\n", name)
			}
			b.WriteString("\n")
		}

		if len(res.LikelyTargets) > 0 {
			b.WriteString("### Likely Targets\n\n")
			for _, name := range res.LikelyTargets {
				fmt.Fprintf(&b, "- `%s`\n", name)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("Note: path, script and comment parameters are " +
		"heuristic and may contain false positives.\n")
	return b.String()
}
