package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/khliang/tradecost"
	"github.com/khliang/tradecost/renderer"
)

// defaultStartTimestamp is 2020-01-01T00:00:00Z, early enough to cover
// the full trading history of any account on the exchange.
const defaultStartTimestamp = 1577836800

// spotCmd holds the flags for the 'spot' subcommand.
type spotCmd struct {
	assets string
	start  int64
	end    int64
}

func (*spotCmd) Name() string     { return "spot" }
func (*spotCmd) Synopsis() string { return "cost basis and PnL analysis of spot assets from the live API" }
func (*spotCmd) Usage() string {
	return `tcs spot -a <assets> [-s <timestamp>] [-e <timestamp>]

  Fetches all account fills for each asset (both the USD and the USDT
  market, folded together), computes average cost basis and the
  realized/unrealized PnL split at the current market price.

Usage Examples:
$ tcs spot -a ETH,BTC
`
}

func (c *spotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assets, "a", "", "Comma-separated list of assets to analyze (required).")
	f.Int64Var(&c.start, "s", defaultStartTimestamp, "Start timestamp in seconds.")
	f.Int64Var(&c.end, "e", 0, "End timestamp in seconds (defaults to now).")
}

func (c *spotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets := splitAssets(c.assets)
	if len(assets) == 0 {
		fmt.Fprintln(os.Stderr, "-a is required")
		return subcommands.ExitUsageError
	}
	end := c.end
	if end == 0 {
		end = time.Now().Unix()
	}

	client := apiClient()
	report := &tradecost.CostReport{}
	for _, asset := range assets {
		quotes := tradecost.USDQuotes()

		// fills are spread over one market per equivalent quote unit
		var fills []tradecost.Fill
		for _, quote := range []string{"USD", "USDT"} {
			batch, err := client.Fills(tradecost.SpotMarket(asset, quote), time.Unix(c.start, 0), time.Unix(end, 0))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error fetching fills for %s: %v\n", asset, err)
				return subcommands.ExitFailure
			}
			fills = append(fills, batch...)
		}

		stats, err := tradecost.Aggregate(fills, asset, quotes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aggregating fills for %s: %v\n", asset, err)
			return subcommands.ExitFailure
		}

		// no fallback here: a PnL report against an unknown price would be
		// worse than an error
		price, err := client.LastPrice(tradecost.SpotMarket(asset, "USD"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		report.Positions = append(report.Positions, tradecost.NewPositionReport(stats, price, true))
	}

	printMarkdown(renderer.CostMarkdown(report))
	return subcommands.ExitSuccess
}
