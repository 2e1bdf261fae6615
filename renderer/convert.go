package renderer

import (
	"fmt"
	"strings"

	"github.com/khliang/tradecost"
)

// ConversionMarkdown renders the conversion report of each portfolio
// (totals per reporting unit, then the per-asset breakdown) followed by
// the totals across all portfolios.
func ConversionMarkdown(reports []*tradecost.PortfolioReport) string {
	var b strings.Builder

	for _, r := range reports {
		fmt.Fprintf(&b, "# %s\n\n", r.Portfolio.Name)

		fmt.Fprint(&b, "## Totals\n\n")
		for _, total := range r.Totals {
			fmt.Fprintf(&b, "- %s\n", total)
		}
		fmt.Fprint(&b, "\n## Breakdown\n\n")
		fmt.Fprintln(&b, "| Asset | Holding | Converted |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for i, asset := range r.Portfolio.Assets {
			converted := r.Converted[i]
			fmt.Fprintf(&b, "| %s | %s | %s %s |\n",
				asset.Symbol, asset.Quantity, converted.Quantity, converted.Symbol)
		}
		fmt.Fprint(&b, "\n")
	}

	if len(reports) > 1 {
		fmt.Fprint(&b, "# Totals of all portfolios\n\n")
		for _, total := range tradecost.GrandTotals(reports) {
			fmt.Fprintf(&b, "- %s\n", total)
		}
	}

	return b.String()
}
