package tradecost

// PositionReport couples the aggregated stats of one asset with the
// current market price and the resulting PnL split.
type PositionReport struct {
	Stats        *PositionStats
	CurrentPrice Money
	Priced       bool // false when no current price was available
	PnL          PnL
}

// NewPositionReport builds the report for one position. When priced is
// false (offline analysis, or the price fetch failed in a path that
// tolerates it), the PnL is left zero and flagged as such.
func NewPositionReport(stats *PositionStats, currentPrice Money, priced bool) PositionReport {
	r := PositionReport{Stats: stats, CurrentPrice: currentPrice, Priced: priced}
	if priced {
		r.PnL = stats.PnL(currentPrice)
	}
	return r
}

// CostReport is the cost/PnL analysis of a set of assets.
type CostReport struct {
	Positions []PositionReport
}

// TotalPnL folds the per-asset PnL values into a grand total. The
// second result is false when no position was priced, i.e. there is no
// total worth displaying.
func (r *CostReport) TotalPnL() (PnL, bool) {
	var total PnL
	priced := false
	for _, p := range r.Positions {
		if !p.Priced {
			continue
		}
		total = total.Add(p.PnL)
		priced = true
	}
	return total, priced
}

// PortfolioReport is the conversion report of one portfolio: every
// asset converted to its target unit, and the per-unit totals.
type PortfolioReport struct {
	Portfolio Portfolio
	Converted []Asset // parallel to Portfolio.Assets
	Totals    []Asset // summed per target unit, sorted
}

// NewPortfolioReport converts the portfolio with the given rates.
func NewPortfolioReport(p Portfolio, rates Rates) (*PortfolioReport, error) {
	converted, err := p.Convert(rates)
	if err != nil {
		return nil, err
	}
	totals, err := p.Totals(rates)
	if err != nil {
		return nil, err
	}
	return &PortfolioReport{Portfolio: p, Converted: converted, Totals: totals}, nil
}

// GrandTotals sums the per-unit totals across portfolio reports.
func GrandTotals(reports []*PortfolioReport) []Asset {
	var all []Asset
	for _, r := range reports {
		all = append(all, r.Totals...)
	}
	return sumBySymbol(all)
}
