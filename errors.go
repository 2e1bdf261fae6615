package tradecost

import "fmt"

// MalformedRecordError reports an input record the aggregator cannot
// interpret (unrecognized side, unparsable numeric field). It is fatal
// for the whole input batch.
type MalformedRecordError struct {
	Record string // identification of the offending record (fill id, csv line)
	Field  string
	Value  string
}

func (e *MalformedRecordError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("malformed record: bad %s value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("malformed record %s: bad %s value %q", e.Record, e.Field, e.Value)
}

// PriceUnavailableError reports a failed external price fetch. The
// conversion resolver recovers from it by prompting for a manual rate;
// the standalone PnL commands treat it as fatal.
type PriceUnavailableError struct {
	Market string
	Err    error
}

func (e *PriceUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("price unavailable for %s", e.Market)
	}
	return fmt.Sprintf("price unavailable for %s: %v", e.Market, e.Err)
}

func (e *PriceUnavailableError) Unwrap() error { return e.Err }

// MissingRateError reports a conversion applied before its rate was
// resolved. This is a caller defect and always fatal.
type MissingRateError struct {
	Conversion Conversion
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no rate resolved for conversion %s", e.Conversion)
}
