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

// perpCmd holds the flags for the 'perp' subcommand.
type perpCmd struct {
	assets string
	start  int64
	end    int64
}

func (*perpCmd) Name() string { return "perp" }
func (*perpCmd) Synopsis() string {
	return "cost basis and PnL analysis of perpetual futures from the live API"
}
func (*perpCmd) Usage() string {
	return `tcs perp -a <assets> [-s <timestamp>] [-e <timestamp>]

  Like 'spot', but for the ASSET-PERP futures markets (quoted in USD).

Usage Examples:
$ tcs perp -a SOL
`
}

func (c *perpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assets, "a", "", "Comma-separated list of assets to analyze (required).")
	f.Int64Var(&c.start, "s", defaultStartTimestamp, "Start timestamp in seconds.")
	f.Int64Var(&c.end, "e", 0, "End timestamp in seconds (defaults to now).")
}

func (c *perpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		market := tradecost.PerpMarket(asset)

		fills, err := client.Fills(market, time.Unix(c.start, 0), time.Unix(end, 0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching fills for %s: %v\n", asset, err)
			return subcommands.ExitFailure
		}

		stats, err := tradecost.Aggregate(fills, asset, tradecost.USDQuotes())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aggregating fills for %s: %v\n", asset, err)
			return subcommands.ExitFailure
		}

		price, err := client.LastPrice(market)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		report.Positions = append(report.Positions, tradecost.NewPositionReport(stats, price, true))
	}

	printMarkdown(renderer.CostMarkdown(report))
	return subcommands.ExitSuccess
}
