package tradecost

// QuoteSet is a set of quote units treated as one unit for accounting
// purposes. Fills quoted in any member fold into the same totals,
// denominated in the canonical unit (e.g. USD and USDT both count as
// USD).
type QuoteSet struct {
	canonical string
	members   map[string]bool
}

// NewQuoteSet builds a QuoteSet with a canonical unit and optional
// equivalents.
func NewQuoteSet(canonical string, equivalents ...string) QuoteSet {
	members := map[string]bool{canonical: true}
	for _, e := range equivalents {
		members[e] = true
	}
	return QuoteSet{canonical: canonical, members: members}
}

// USDQuotes treats USD and USDT as interchangeable, reported as USD.
func USDQuotes() QuoteSet { return NewQuoteSet("USD", "USDT") }

// Canonical returns the unit totals are denominated in.
func (q QuoteSet) Canonical() string { return q.canonical }

// Has reports whether the named unit belongs to the set.
func (q QuoteSet) Has(unit string) bool { return q.members[unit] }

// PositionStats accumulates the cost and earnings of one base asset.
// It is built by folding fills in, in any order, and is read-only once
// aggregation completes.
type PositionStats struct {
	asset        string
	quotes       QuoteSet
	transactions int

	bought   Quantity // amount of the asset bought
	spent    Money    // quote spent buying
	sold     Quantity // amount of the asset sold
	received Money    // quote received selling

	seen map[string]bool // fill ids already folded, for deduplication
}

// NewPositionStats returns an empty accumulator for the given asset and
// quote unit equivalence set.
func NewPositionStats(asset string, quotes QuoteSet) *PositionStats {
	return &PositionStats{
		asset:    asset,
		quotes:   quotes,
		spent:    M(0, quotes.Canonical()),
		received: M(0, quotes.Canonical()),
		seen:     make(map[string]bool),
	}
}

// Fold accumulates a single fill. It returns true if the fill was
// counted, false if it was skipped (duplicate identifier or a market
// that does not match the asset and quote set). A side that is neither
// buy nor sell is a malformed record and aborts the batch.
func (s *PositionStats) Fold(f Fill) (bool, error) {
	if f.Market.Base() != s.asset || !s.quotes.Has(f.Market.Quote()) {
		return false, nil
	}
	if s.seen[f.ID] {
		return false, nil
	}
	value := M(f.Price.Amount(), s.quotes.Canonical()).Mul(f.Size)
	switch f.Side {
	case Buy:
		s.bought = s.bought.Add(f.Size)
		s.spent = s.spent.Add(value)
	case Sell:
		s.sold = s.sold.Add(f.Size)
		s.received = s.received.Add(value)
	default:
		return false, &MalformedRecordError{Record: f.ID, Field: "side", Value: f.Side.String()}
	}
	s.seen[f.ID] = true
	s.transactions++
	return true, nil
}

// Aggregate folds a batch of fills into position totals for one asset.
// Fills from other markets are silently skipped, duplicates (same fill
// identifier) are counted at most once, and the result is independent
// of the input order.
func Aggregate(fills []Fill, asset string, quotes QuoteSet) (*PositionStats, error) {
	stats := NewPositionStats(asset, quotes)
	for _, f := range fills {
		if _, err := stats.Fold(f); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (s *PositionStats) Asset() string     { return s.asset }
func (s *PositionStats) Quote() string     { return s.quotes.Canonical() }
func (s *PositionStats) Transactions() int { return s.transactions }
func (s *PositionStats) Bought() Quantity  { return s.bought }
func (s *PositionStats) Spent() Money      { return s.spent }
func (s *PositionStats) Sold() Quantity    { return s.sold }
func (s *PositionStats) Received() Money   { return s.received }

// NetPosition returns bought minus sold: positive means net long,
// negative net short.
func (s *PositionStats) NetPosition() Quantity { return s.bought.Sub(s.sold) }

// AverageBuyPrice returns spent/bought, or zero when nothing was bought.
func (s *PositionStats) AverageBuyPrice() Money {
	if s.bought.IsZero() {
		return M(0, s.Quote())
	}
	return s.spent.Div(s.bought)
}

// AverageSellPrice returns received/sold, or zero when nothing was sold.
func (s *PositionStats) AverageSellPrice() Money {
	if s.sold.IsZero() {
		return M(0, s.Quote())
	}
	return s.received.Div(s.sold)
}
