package tradecost

// PnL is the profit and loss of a position, split between the part
// attributable to closed (matched) volume and the part still open.
type PnL struct {
	Realized   Money
	Unrealized Money
}

// Total is the sum of realized and unrealized PnL.
func (p PnL) Total() Money { return p.Realized.Add(p.Unrealized) }

// Add returns the component-wise sum of two PnL values, used to fold
// per-asset results into a grand total.
func (p PnL) Add(q PnL) PnL {
	return PnL{
		Realized:   p.Realized.Add(q.Realized),
		Unrealized: p.Unrealized.Add(q.Unrealized),
	}
}

// PnL computes the realized/unrealized split for the position, marked
// at the given current price. It is a pure function of its inputs: a
// zero or negative currentPrice is accepted arithmetically and left to
// the caller's judgement.
//
// Realized PnL is attributed to the matched (round-tripped) volume,
// priced at the spread between average entry and average exit; the
// remainder is unrealized, so realized+unrealized always equals the
// mark-to-market value of the net position plus net cash flow.
//
// When the position is exactly flat (bought == sold, including the
// no-activity case), the whole cash flow difference is realized and
// nothing is unrealized. This fast path also avoids the average-price
// division when it is undefined.
func (s *PositionStats) PnL(currentPrice Money) PnL {
	if s.bought.Equal(s.sold) {
		return PnL{
			Realized:   s.received.Sub(s.spent),
			Unrealized: M(0, s.Quote()),
		}
	}

	totalPnL := currentPrice.Mul(s.NetPosition()).Add(s.received).Sub(s.spent)

	spread := s.AverageSellPrice().Sub(s.AverageBuyPrice())
	realized := spread.Mul(s.bought.Min(s.sold))

	return PnL{
		Realized:   realized,
		Unrealized: totalPnL.Sub(realized),
	}
}
