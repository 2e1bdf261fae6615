package tradecost

import (
	"fmt"
	"strings"
	"time"
)

// Side is the direction of a trade fill.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a fill side. Anything but "buy" or "sell" is a
// malformed record.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, &MalformedRecordError{Field: "side", Value: s}
	}
}

// Market names a traded pair, either spot "BASE/QUOTE" or a perpetual
// future "BASE-PERP" (always quoted in USD).
type Market string

const perpSuffix = "-PERP"

// SpotMarket builds the spot market name for a base asset and quote unit.
func SpotMarket(base, quote string) Market { return Market(base + "/" + quote) }

// PerpMarket builds the perpetual future market name for a base asset.
func PerpMarket(base string) Market { return Market(base + perpSuffix) }

// Base returns the base asset of the market, or "" if the name has no
// recognizable structure.
func (m Market) Base() string {
	if base, _, found := strings.Cut(string(m), "/"); found {
		return base
	}
	if base, found := strings.CutSuffix(string(m), perpSuffix); found {
		return base
	}
	return ""
}

// Quote returns the quote unit of the market. Perpetual futures are
// quoted in USD.
func (m Market) Quote() string {
	if _, quote, found := strings.Cut(string(m), "/"); found {
		return quote
	}
	if strings.HasSuffix(string(m), perpSuffix) {
		return "USD"
	}
	return ""
}

// Fill is one executed trade record. Fills are immutable facts: the
// aggregator folds them into totals but never modifies them.
type Fill struct {
	ID     string    // unique fill identifier, the deduplication key
	Market Market    // market the fill was executed on
	Side   Side      // buy or sell
	Size   Quantity  // base asset quantity
	Price  Money     // price per unit, in the market's quote unit
	Time   time.Time // execution instant
}

func (f Fill) String() string {
	return fmt.Sprintf("fill %s: %s %s %s @ %s", f.ID, f.Market, f.Side, f.Size, f.Price)
}
