package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/khliang/tradecost"
)

// headings parses the rendered markdown and returns the text of every
// heading at the given level, proving the output is structurally valid
// markdown and not just a wall of text.
func headings(t *testing.T, source string, level int) []string {
	t.Helper()
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	var found []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == level {
			found = append(found, string(h.Text(src)))
		}
		return ast.WalkContinue, nil
	})
	return found
}

func costReportFixture(t *testing.T) *tradecost.CostReport {
	t.Helper()
	fills := []tradecost.Fill{
		{ID: "1", Market: "ETH/USD", Side: tradecost.Buy, Size: tradecost.Q(2), Price: tradecost.M(150, "USD")},
		{ID: "2", Market: "ETH/USD", Side: tradecost.Sell, Size: tradecost.Q(1), Price: tradecost.M(250, "USD")},
		{ID: "3", Market: "BTC/USD", Side: tradecost.Buy, Size: tradecost.Q(1), Price: tradecost.M(30000, "USD")},
	}
	eth, err := tradecost.Aggregate(fills, "ETH", tradecost.USDQuotes())
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}
	btc, err := tradecost.Aggregate(fills, "BTC", tradecost.USDQuotes())
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}
	return &tradecost.CostReport{Positions: []tradecost.PositionReport{
		tradecost.NewPositionReport(eth, tradecost.M(150, "USD"), true),
		tradecost.NewPositionReport(btc, tradecost.Money{}, false),
	}}
}

func TestCostMarkdown(t *testing.T) {
	md := CostMarkdown(costReportFixture(t))

	h1 := headings(t, md, 1)
	if len(h1) != 3 {
		t.Fatalf("rendered %d level-1 headings, want 3 (two assets and the total):\n%s", len(h1), md)
	}
	if !strings.HasPrefix(h1[0], "ETH") || !strings.HasPrefix(h1[1], "BTC") {
		t.Errorf("asset headings = %q, want ETH then BTC", h1[:2])
	}
	if !strings.HasPrefix(h1[2], "Total PnL") {
		t.Errorf("last heading = %q, want the total PnL", h1[2])
	}
	if !strings.Contains(md, "No current price available") {
		t.Error("unpriced position should say the price was unavailable")
	}
	if !strings.Contains(md, "2 trades") {
		t.Error("heading should carry the trade count")
	}
}

func TestCostMarkdown_SingleUnpricedPosition(t *testing.T) {
	report := costReportFixture(t)
	report.Positions = report.Positions[1:] // BTC only, unpriced

	md := CostMarkdown(report)
	if h1 := headings(t, md, 1); len(h1) != 1 {
		t.Fatalf("rendered %d level-1 headings, want just the asset:\n%s", len(h1), md)
	}
	if strings.Contains(md, "Total PnL") {
		t.Error("no total section expected without a priced position")
	}
}

func TestConversionMarkdown(t *testing.T) {
	eth := tradecost.Symbol{Type: tradecost.Crypto, Name: "ETH"}
	usd := tradecost.Symbol{Type: tradecost.Fiat, Name: "USD"}
	rates := tradecost.Rates{{From: eth, To: usd}: tradecost.Q(1500)}

	a, err := tradecost.NewPortfolioReport(tradecost.Portfolio{
		Name:   "exchange",
		Assets: []tradecost.Asset{{Symbol: eth, Quantity: tradecost.Q(2)}},
	}, rates)
	if err != nil {
		t.Fatalf("NewPortfolioReport() returned unexpected error: %v", err)
	}
	b, err := tradecost.NewPortfolioReport(tradecost.Portfolio{
		Name:   "cold storage",
		Assets: []tradecost.Asset{{Symbol: eth, Quantity: tradecost.Q(1)}},
	}, rates)
	if err != nil {
		t.Fatalf("NewPortfolioReport() returned unexpected error: %v", err)
	}

	md := ConversionMarkdown([]*tradecost.PortfolioReport{a, b})

	h1 := headings(t, md, 1)
	if len(h1) != 3 {
		t.Fatalf("rendered %d level-1 headings, want 3 (two portfolios and the grand total):\n%s", len(h1), md)
	}
	if h1[0] != "exchange" || h1[1] != "cold storage" {
		t.Errorf("portfolio headings = %q", h1[:2])
	}
	if h2 := headings(t, md, 2); len(h2) != 4 {
		t.Errorf("rendered %d level-2 headings, want Totals and Breakdown per portfolio", len(h2))
	}
	if !strings.Contains(md, "| CRYPTO.ETH | 2 | 3000 FIAT.USD |") {
		t.Errorf("breakdown table row missing:\n%s", md)
	}
	if !strings.Contains(md, "FIAT.USD: 4500") {
		t.Errorf("grand total missing:\n%s", md)
	}
}

func TestConversionMarkdown_SinglePortfolio(t *testing.T) {
	eth := tradecost.Symbol{Type: tradecost.Crypto, Name: "ETH"}
	usd := tradecost.Symbol{Type: tradecost.Fiat, Name: "USD"}
	r, err := tradecost.NewPortfolioReport(tradecost.Portfolio{
		Name:   "exchange",
		Assets: []tradecost.Asset{{Symbol: eth, Quantity: tradecost.Q(1)}},
	}, tradecost.Rates{{From: eth, To: usd}: tradecost.Q(1500)})
	if err != nil {
		t.Fatalf("NewPortfolioReport() returned unexpected error: %v", err)
	}

	md := ConversionMarkdown([]*tradecost.PortfolioReport{r})
	if strings.Contains(md, "all portfolios") {
		t.Error("no grand total section expected for a single portfolio")
	}
}
