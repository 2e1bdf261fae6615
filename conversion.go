package tradecost

import (
	"fmt"
	"log"
)

// Conversion is a pair of symbols an exchange rate is needed for.
// It is a value object: equality of the pair identifies the conversion,
// which makes it usable as the deduplication key for "which rates must
// be fetched".
type Conversion struct {
	From Symbol
	To   Symbol
}

func (c Conversion) String() string {
	return fmt.Sprintf("%s -> %s", c.From, c.To)
}

// Rates maps resolved conversions to their exchange rate.
type Rates map[Conversion]Quantity

// Rate returns the resolved rate for a conversion, or a
// MissingRateError when the conversion was never resolved.
func (r Rates) Rate(c Conversion) (Quantity, error) {
	rate, ok := r[c]
	if !ok {
		return Quantity{}, &MissingRateError{Conversion: c}
	}
	return rate, nil
}

// RateSource obtains a live exchange rate for a pair of symbols.
// A failure of any kind (timeout, non-success status, unsupported
// pair) must be reported as an error; the resolver then falls back to
// manual input.
type RateSource interface {
	LastRate(from, to Symbol) (Quantity, error)
}

// RatePrompter supplies a manually entered rate. It is the
// human-in-the-loop fallback when no source can quote a pair.
type RatePrompter interface {
	PromptRate(c Conversion) (Quantity, error)
}

// ResolveRates obtains a rate for every required conversion. Identity
// conversions resolve to exactly 1 without touching the source. Any
// source failure falls back to the prompter, exactly once per
// conversion; a rate the prompter cannot supply is the only way this
// fails, and the error names the pair.
func ResolveRates(required []Conversion, source RateSource, fallback RatePrompter) (Rates, error) {
	rates := make(Rates, len(required))
	for _, c := range required {
		if c.From == c.To {
			rates[c] = Q(1)
			continue
		}
		rate, err := source.LastRate(c.From, c.To)
		if err != nil {
			log.Printf("no live rate for %s (%v), asking for a manual rate", c, err)
			rate, err = fallback.PromptRate(c)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", c, err)
			}
		}
		rates[c] = rate
	}
	return rates, nil
}
