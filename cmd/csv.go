package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/khliang/tradecost"
	"github.com/khliang/tradecost/renderer"
)

// csvCmd holds the flags for the 'csv' subcommand.
type csvCmd struct {
	file      string
	assets    string
	livePrice bool
}

func (*csvCmd) Name() string { return "csv" }
func (*csvCmd) Synopsis() string {
	return "cost basis analysis from a trades CSV export, no credentials needed"
}
func (*csvCmd) Usage() string {
	return `tcs csv -f <trades.csv> -a <assets> [-i]

  Parses the trades CSV file downloaded from the exchange and computes
  the cost basis of each asset. With -i, the current price is fetched
  from the public API and the PnL split is reported too.

Usage Examples:
$ tcs csv -f trades.csv -a ETH,SOL -i
`
}

func (c *csvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "The trades CSV file downloaded from the exchange (required).")
	f.StringVar(&c.assets, "a", "", "Comma-separated list of assets to analyze (required).")
	f.BoolVar(&c.livePrice, "i", false, "Include the current price from the public API.")
}

func (c *csvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets := splitAssets(c.assets)
	if c.file == "" || len(assets) == 0 {
		fmt.Fprintln(os.Stderr, "-f and -a are required")
		return subcommands.ExitUsageError
	}

	fills, err := tradecost.ReadTradesCSVFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	client := publicClient()
	report := &tradecost.CostReport{}
	for _, asset := range assets {
		stats, err := tradecost.Aggregate(fills, asset, tradecost.USDQuotes())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aggregating fills for %s: %v\n", asset, err)
			return subcommands.ExitFailure
		}

		if !c.livePrice {
			report.Positions = append(report.Positions, tradecost.NewPositionReport(stats, tradecost.Money{}, false))
			continue
		}
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
