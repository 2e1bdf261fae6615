package tradecost

import "testing"

// buildStats folds synthetic buy and sell fills so tests can state
// positions directly in terms of totals.
func buildStats(t *testing.T, bought, spent, sold, received string) *PositionStats {
	t.Helper()
	stats := NewPositionStats("ETH", USDQuotes())
	if qty := Q(bought); !qty.IsZero() {
		fill := Fill{ID: "buy", Market: "ETH/USD", Side: Buy, Size: qty, Price: M(spent, "USD").Div(qty)}
		if _, err := stats.Fold(fill); err != nil {
			t.Fatalf("Fold() returned unexpected error: %v", err)
		}
	}
	if qty := Q(sold); !qty.IsZero() {
		fill := Fill{ID: "sell", Market: "ETH/USD", Side: Sell, Size: qty, Price: M(received, "USD").Div(qty)}
		if _, err := stats.Fold(fill); err != nil {
			t.Fatalf("Fold() returned unexpected error: %v", err)
		}
	}
	return stats
}

func TestPnL(t *testing.T) {
	testCases := []struct {
		name           string
		bought, spent  string
		sold, received string
		currentPrice   string
		wantRealized   string
		wantUnrealized string
	}{
		{
			name:   "no activity at all",
			bought: "0", spent: "0", sold: "0", received: "0",
			currentPrice: "100",
			wantRealized: "0", wantUnrealized: "0",
		},
		{
			name:   "fully closed at a profit",
			bought: "2", spent: "300", sold: "2", received: "500",
			currentPrice: "999", // irrelevant once flat
			wantRealized: "200", wantUnrealized: "0",
		},
		{
			name:   "fully closed at a loss",
			bought: "1", spent: "300", sold: "1", received: "250",
			currentPrice: "10",
			wantRealized: "-50", wantUnrealized: "0",
		},
		{
			name:   "reference scenario",
			bought: "2", spent: "300", sold: "1", received: "250",
			currentPrice: "150",
			// total = 1*150 + 250 - 300 = 100; realized = min(2,1)*(250-150) = 100
			wantRealized: "100", wantUnrealized: "0",
		},
		{
			name:   "open long, no sells yet",
			bought: "2", spent: "300", sold: "0", received: "0",
			currentPrice: "200",
			// avg sell is 0, so the spread attributes -150 per matched unit,
			// but matched volume is 0: everything is unrealized
			wantRealized: "0", wantUnrealized: "100",
		},
		{
			name:   "net short",
			bought: "0", spent: "0", sold: "3", received: "600",
			currentPrice: "150",
			// total = -3*150 + 600 = 150, matched volume 0
			wantRealized: "0", wantUnrealized: "150",
		},
		{
			name:   "partial close at varying prices",
			bought: "4", spent: "400", sold: "1", received: "250",
			currentPrice: "150",
			// avg buy 100, avg sell 250; realized = 1 * 150
			// total = 3*150 + 250 - 400 = 300
			wantRealized: "150", wantUnrealized: "150",
		},
		{
			name:   "zero current price is accepted",
			bought: "2", spent: "300", sold: "1", received: "250",
			currentPrice: "0",
			// total = 0 + 250 - 300 = -50; realized = 1*(250-150) = 100
			wantRealized: "100", wantUnrealized: "-150",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := buildStats(t, tc.bought, tc.spent, tc.sold, tc.received)
			pnl := stats.PnL(M(tc.currentPrice, "USD"))

			if want := M(tc.wantRealized, "USD"); !pnl.Realized.Equal(want) {
				t.Errorf("Realized = %s, want %s", pnl.Realized, want)
			}
			if want := M(tc.wantUnrealized, "USD"); !pnl.Unrealized.Equal(want) {
				t.Errorf("Unrealized = %s, want %s", pnl.Unrealized, want)
			}

			// conservation: realized + unrealized is the mark-to-market value
			// of the net position plus the net cash flow, exactly
			mark := M(tc.currentPrice, "USD").Mul(stats.NetPosition())
			wantTotal := mark.Add(stats.Received()).Sub(stats.Spent())
			if !pnl.Total().Equal(wantTotal) {
				t.Errorf("Total() = %s, want %s (conservation)", pnl.Total(), wantTotal)
			}
		})
	}
}

func TestPnL_FlatFastPath(t *testing.T) {
	// when bought == sold the division-based formula is never entered,
	// whatever the price, and the whole cash flow difference is realized
	stats := buildStats(t, "5", "500", "5", "650")
	for _, price := range []string{"0", "-10", "1000000"} {
		pnl := stats.PnL(M(price, "USD"))
		if !pnl.Realized.Equal(M(150, "USD")) {
			t.Errorf("price %s: Realized = %s, want $150", price, pnl.Realized)
		}
		if !pnl.Unrealized.IsZero() {
			t.Errorf("price %s: Unrealized = %s, want 0", price, pnl.Unrealized)
		}
	}
}

func TestPnL_TotalAdds(t *testing.T) {
	a := PnL{Realized: M(10, "USD"), Unrealized: M(-4, "USD")}
	b := PnL{Realized: M(5, "USD"), Unrealized: M(1, "USD")}
	sum := a.Add(b)
	if !sum.Realized.Equal(M(15, "USD")) || !sum.Unrealized.Equal(M(-3, "USD")) {
		t.Errorf("Add() = %s/%s, want $15/-$3", sum.Realized, sum.Unrealized)
	}
	if !sum.Total().Equal(M(12, "USD")) {
		t.Errorf("Total() = %s, want $12", sum.Total())
	}
}
