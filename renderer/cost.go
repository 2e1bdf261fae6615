// Package renderer builds markdown reports from tradecost results.
// It only produces strings; printing (and terminal styling) is the
// caller's concern.
package renderer

import (
	"fmt"
	"strings"

	"github.com/khliang/tradecost"
)

// CostMarkdown renders the cost/PnL analysis of a set of assets.
func CostMarkdown(report *tradecost.CostReport) string {
	var b strings.Builder

	for _, p := range report.Positions {
		stats := p.Stats
		fmt.Fprintf(&b, "# %s: %d trades\n\n", stats.Asset(), stats.Transactions())

		fmt.Fprintf(&b, "Spent %s for %s %s. (%s each.)\n\n",
			stats.Spent(), stats.Bought(), stats.Asset(), stats.AverageBuyPrice())
		fmt.Fprintf(&b, "Sold %s %s for %s. (%s each.)\n\n",
			stats.Sold(), stats.Asset(), stats.Received(), stats.AverageSellPrice())

		if !p.Priced {
			fmt.Fprint(&b, "No current price available, PnL not computed.\n\n")
			continue
		}
		fmt.Fprintf(&b, "Current price: %s\n\n", p.CurrentPrice)
		fmt.Fprintf(&b, "PnL: **%s** (Realized: %s, Unrealized: %s)\n\n",
			p.PnL.Total().SignedString(),
			p.PnL.Realized.SignedString(),
			p.PnL.Unrealized.SignedString(),
		)
	}

	if total, ok := report.TotalPnL(); ok && len(report.Positions) > 1 {
		fmt.Fprintf(&b, "# Total PnL: **%s** (Realized: %s, Unrealized: %s)\n",
			total.Total().SignedString(),
			total.Realized.SignedString(),
			total.Unrealized.SignedString(),
		)
	}

	return b.String()
}
