package utils

import "github.com/pterm/pterm"

// PrintBanner prints the ParamBuster banner
func PrintBanner(version string) {
	banner := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("PARAM", pterm.NewStyle(pterm.FgLightCyan)),
		pterm.NewLettersFromStringWithStyle("BUSTER", pterm.NewStyle(pterm.FgLightMagenta)),
	)
	banner.Render()

	pterm.DefaultCenter.Printf("v%s - Web Parameter Discovery\n", version)
	pterm.DefaultCenter.Println(pterm.LightYellow("Query | Path | Forms | Scripts | Comments"))
	pterm.Println()
}

// PrintCompactBanner prints a compact banner for CI/CD
func PrintCompactBanner(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Printf(" ParamBuster v%s ", version)
	pterm.Println()
}

// PrintSection prints a section header
func PrintSection(title string) {
	pterm.DefaultSection.Println(title)
}

// PrintInteresting prints a highlighted candidate name
func PrintInteresting(name string) {
	pterm.NewStyle(pterm.FgYellow, pterm.Bold).Printf("  * ")
	pterm.Printf("%s\n", name)
}
