package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/khliang/tradecost"
	"github.com/khliang/tradecost/ftx"
	"github.com/khliang/tradecost/renderer"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	portfolioFile string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert portfolios into their reporting currencies and sum them up"
}
func (*convertCmd) Usage() string {
	return `tcs convert -p <portfolios.yaml>

  Loads the portfolio file, resolves an exchange rate for every
  (asset, reporting unit) pair -- from the exchange for listed pairs,
  asking on the terminal for the others -- and reports each portfolio
  converted, plus totals across all portfolios.

Usage Examples:
$ tcs convert -p portfolios.yaml
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolioFile, "p", "", "Path to the YAML file that stores portfolio data (required).")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolioFile == "" {
		fmt.Fprintln(os.Stderr, "-p is required")
		return subcommands.ExitUsageError
	}

	portfolios, err := tradecost.LoadPortfolios(c.portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	// every rate is resolved once, even when several portfolios share a pair
	var required []tradecost.Conversion
	known := make(map[tradecost.Conversion]bool)
	for _, p := range portfolios {
		for _, conv := range p.RequiredConversions() {
			if known[conv] {
				continue
			}
			known[conv] = true
			required = append(required, conv)
		}
	}

	source := ftx.RateQuoter{Client: publicClient()}
	rates, err := tradecost.ResolveRates(required, source, newStdinPrompter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving rates: %v\n", err)
		return subcommands.ExitFailure
	}

	var reports []*tradecost.PortfolioReport
	for _, p := range portfolios {
		report, err := tradecost.NewPortfolioReport(p, rates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting portfolio %q: %v\n", p.Name, err)
			return subcommands.ExitFailure
		}
		reports = append(reports, report)
	}

	printMarkdown(renderer.ConversionMarkdown(reports))
	return subcommands.ExitSuccess
}
