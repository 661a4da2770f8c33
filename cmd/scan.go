package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"parambuster/pkg/analyzer"
	"parambuster/pkg/client"
	"parambuster/pkg/extractor"
	"parambuster/pkg/reporter"
	"parambuster/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract candidate parameter names from a page",
	Long: `Scan a web page's source for candidate parameter names.

The scanner fetches a single page (no crawling) and runs independent
extractors over its source:
  1. Query string keys from the URL itself
  2. Path segments that look like parameter values (heuristic)
  3. Visible and hidden form fields
  4. Variable names and object keys in inline scripts (heuristic)
  5. Identifier-like tokens in HTML comments (heuristic)

All six categories are always rendered, empty ones with a zero count.
Heuristic categories trade precision for recall: expect false
positives and review the output by hand.

Examples:
  parambuster scan -u "https://example.com/search?q=test"
  parambuster scan -u "https://example.com/" --offline page.html
  parambuster scan -l urls.txt -o report.json`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("url", "u", "", "Target URL")
	scanCmd.Flags().StringP("list", "l", "", "File with target URLs, one per line")
	scanCmd.Flags().String("offline", "", "Read page body from a local file instead of fetching (requires -u for the base URL)")
	scanCmd.Flags().StringP("output", "o", "", "Output report file")
	scanCmd.Flags().StringP("format", "f", "json", "Report format: json, markdown")
	scanCmd.Flags().StringP("cookies", "c", "", "Session cookies")
	scanCmd.Flags().StringArrayP("header", "H", nil, "Custom headers (e.g. -H 'Authorization: Bearer token')")
	scanCmd.Flags().StringP("auth", "a", "", "Bearer token for Authorization header")
	scanCmd.Flags().BoolP("insecure", "k", false, "Skip SSL verification")
	scanCmd.Flags().String("timeout", "", "Request timeout (e.g. 10s)")
	scanCmd.Flags().Int("delay", 0, "Delay between requests in milliseconds (list mode)")
}

func runScan(cmd *cobra.Command, args []string) error {
	targetURL, _ := cmd.Flags().GetString("url")
	listPath, _ := cmd.Flags().GetString("list")
	offline, _ := cmd.Flags().GetString("offline")
	outputFile, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	cookies, _ := cmd.Flags().GetString("cookies")
	customHeaders, _ := cmd.Flags().GetStringArray("header")
	bearerToken, _ := cmd.Flags().GetString("auth")
	skipSSL, _ := cmd.Flags().GetBool("insecure")
	timeout, _ := cmd.Flags().GetString("timeout")
	delay, _ := cmd.Flags().GetInt("delay")

	if targetURL == "" && listPath == "" {
		return fmt.Errorf("either --url or --list is required")
	}
	if offline != "" && targetURL == "" {
		return fmt.Errorf("--offline requires --url for the base URL")
	}

	// Load config
	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = "configs/default.yaml"
	}
	cfg, err := utils.LoadConfig(cfgPath)
	if err != nil {
		if cfgFile != "" {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = getDefaultConfig()
	}

	// Override config with flags
	if skipSSL {
		cfg.Scanner.SkipSSL = true
	}
	if timeout != "" {
		cfg.Scanner.Timeout = timeout
	}
	if delay > 0 {
		cfg.Scanner.Delay = fmt.Sprintf("%dms", delay)
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}

	opts := extractorOptions(cfg)

	// Collect targets
	var targets []string
	if listPath != "" {
		targets, err = utils.LoadLines(listPath)
		if err != nil {
			return fmt.Errorf("loading target list: %w", err)
		}
		if len(targets) == 0 {
			return fmt.Errorf("target list %s is empty", listPath)
		}
		utils.Info.Printf("Loaded %d targets from %s\n", len(targets), listPath)
	} else {
		targets = []string{targetURL}
	}

	f := client.NewFetcher(cfg)
	if cookies != "" {
		f.SetCookies(cookies)
	}
	for _, h := range customHeaders {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) == 2 {
			f.SetDefaultHeader(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}
	if bearerToken != "" {
		f.SetDefaultHeader("Authorization", "Bearer "+bearerToken)
	}

	ranker := analyzer.NewRanker()
	rep := reporter.NewReporter(cfg.Output.Format)
	ctx := context.Background()

	for _, target := range targets {
		page, err := loadPage(ctx, f, target, offline)
		if err != nil {
			if len(targets) == 1 {
				return err
			}
			// List mode: one dead target does not stop the rest.
			utils.Error.Printf("%v\n", err)
			continue
		}

		findings := extractor.ExtractWithOptions(page, opts)
		likely := likelyTargets(findings, ranker)

		printFindings(target, findings, likely)
		rep.AddResult(target, findings, likely)
	}

	if outputFile != "" {
		if err := rep.GenerateReport(outputFile); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		utils.Success.Printf("Report saved to %s\n", outputFile)
	}
	return nil
}

func loadPage(ctx context.Context, f *client.Fetcher, target, offline string) (extractor.PageSource, error) {
	if offline != "" {
		u, err := url.Parse(target)
		if err != nil {
			return extractor.PageSource{}, fmt.Errorf("invalid URL %q: %w", target, err)
		}
		body, err := os.ReadFile(offline)
		if err != nil {
			return extractor.PageSource{}, fmt.Errorf("reading %s: %w", offline, err)
		}
		return extractor.PageSource{URL: u, HTML: string(body)}, nil
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Fetching %s...", target))
	page, err := f.FetchPage(ctx, target)
	if err != nil {
		spinner.Fail("Fetch failed")
		return extractor.PageSource{}, err
	}
	spinner.Success(fmt.Sprintf("Fetched %d bytes", len(page.HTML)))
	return page, nil
}

func extractorOptions(cfg *utils.Config) extractor.Options {
	opts := extractor.DefaultOptions()
	if cfg.Extractor.MinCommentToken > 0 {
		opts.MinCommentTokenLen = cfg.Extractor.MinCommentToken
	}
	if cfg.Extractor.MaxHarvestedURLs > 0 {
		opts.MaxHarvestedURLs = cfg.Extractor.MaxHarvestedURLs
	}
	return opts
}

// likelyTargets collects names across all categories that rank close
// to well-known parameter names, preserving discovery order.
func likelyTargets(f *extractor.Findings, ranker *analyzer.Ranker) []string {
	var likely []string
	seen := make(map[string]bool)
	for _, cat := range extractor.Categories {
		for _, name := range f.Names(cat) {
			if seen[name] || !ranker.IsInteresting(name) {
				continue
			}
			seen[name] = true
			likely = append(likely, name)
		}
	}
	return likely
}

func printFindings(target string, f *extractor.Findings, likely []string) {
	pterm.DefaultSection.Println("Parameter Discovery Results")
	utils.Info.Printf("Target: %s\n", target)

	for _, cat := range extractor.Categories {
		names := f.Names(cat)
		pterm.DefaultSection.WithLevel(2).Printf("%s (%d found)\n", cat, len(names))
		if len(names) == 0 {
			pterm.Println(pterm.Gray("  (none)"))
			continue
		}
		for _, name := range names {
			pterm.Printf("  - %s\n", name)
		}
	}

	if len(likely) > 0 {
		pterm.DefaultSection.WithLevel(2).Printf("Likely Targets (%d)\n", len(likely))
		for _, name := range likely {
			utils.PrintInteresting(name)
		}
	}

	utils.Info.Printf("Total unique parameters: %d\n", f.Total())
	pterm.Println(pterm.Gray("Note: path, script and comment parameters are heuristic and may contain false positives."))
}

func getDefaultConfig() *utils.Config {
	return &utils.Config{
		Scanner: utils.ScannerConfig{
			Timeout:           "10s",
			MaxRetries:        3,
			RequestsPerSecond: 5,
			Delay:             "100ms",
			SkipSSL:           false,
			UserAgent:         "parambuster/" + version,
		},
		Extractor: utils.ExtractorConfig{
			MinCommentToken:  3,
			MaxHarvestedURLs: 200,
		},
		Output: utils.OutputConfig{
			Format:  "json",
			Verbose: false,
		},
	}
}
