package tradecost

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// stubSource is a RateSource scripted per pair; it records every call.
type stubSource struct {
	rates map[Conversion]Quantity
	calls []Conversion
}

func (s *stubSource) LastRate(from, to Symbol) (Quantity, error) {
	c := Conversion{From: from, To: to}
	s.calls = append(s.calls, c)
	rate, ok := s.rates[c]
	if !ok {
		return Quantity{}, &PriceUnavailableError{Market: from.Name + "/" + to.Name}
	}
	return rate, nil
}

// stubPrompter is a RatePrompter scripted per pair.
type stubPrompter struct {
	rates map[Conversion]Quantity
	calls []Conversion
}

func (s *stubPrompter) PromptRate(c Conversion) (Quantity, error) {
	s.calls = append(s.calls, c)
	rate, ok := s.rates[c]
	if !ok {
		return Quantity{}, fmt.Errorf("no manual rate for %s", c)
	}
	return rate, nil
}

var (
	eth = Symbol{Type: Crypto, Name: "ETH"}
	usd = Symbol{Type: Fiat, Name: "USD"}
	twd = Symbol{Type: Fiat, Name: "TWD"}
	tsm = Symbol{Type: USStock, Name: "TSM"}
)

func TestResolveRates_Identity(t *testing.T) {
	source := &stubSource{}
	prompter := &stubPrompter{}

	rates, err := ResolveRates([]Conversion{{From: usd, To: usd}}, source, prompter)
	if err != nil {
		t.Fatalf("ResolveRates() returned unexpected error: %v", err)
	}
	rate, err := rates.Rate(Conversion{From: usd, To: usd})
	if err != nil {
		t.Fatalf("Rate() returned unexpected error: %v", err)
	}
	if !rate.Equal(Q(1)) {
		t.Errorf("identity rate = %s, want 1", rate)
	}
	if len(source.calls) != 0 {
		t.Errorf("source was called %d times for an identity conversion, want 0", len(source.calls))
	}
	if len(prompter.calls) != 0 {
		t.Errorf("prompter was called %d times for an identity conversion, want 0", len(prompter.calls))
	}
}

func TestResolveRates_FromSource(t *testing.T) {
	c := Conversion{From: eth, To: usd}
	source := &stubSource{rates: map[Conversion]Quantity{c: Q("1800.5")}}
	prompter := &stubPrompter{}

	rates, err := ResolveRates([]Conversion{c}, source, prompter)
	if err != nil {
		t.Fatalf("ResolveRates() returned unexpected error: %v", err)
	}
	rate, err := rates.Rate(c)
	if err != nil {
		t.Fatalf("Rate() returned unexpected error: %v", err)
	}
	if !rate.Equal(Q("1800.5")) {
		t.Errorf("rate = %s, want 1800.5", rate)
	}
	if len(prompter.calls) != 0 {
		t.Errorf("prompter was called although the source answered")
	}
}

func TestResolveRates_FallsBackToPrompt(t *testing.T) {
	c := Conversion{From: tsm, To: usd}
	source := &stubSource{} // fails every pair
	prompter := &stubPrompter{rates: map[Conversion]Quantity{c: Q("110")}}

	rates, err := ResolveRates([]Conversion{c}, source, prompter)
	if err != nil {
		t.Fatalf("ResolveRates() returned unexpected error: %v", err)
	}
	rate, err := rates.Rate(c)
	if err != nil {
		t.Fatalf("Rate() returned unexpected error: %v", err)
	}
	if !rate.Equal(Q("110")) {
		t.Errorf("rate = %s, want 110", rate)
	}
	if got, want := len(prompter.calls), 1; got != want {
		t.Errorf("prompter called %d times, want exactly %d", got, want)
	}
}

func TestResolveRates_PromptFailureNamesThePair(t *testing.T) {
	c := Conversion{From: usd, To: twd}
	_, err := ResolveRates([]Conversion{c}, &stubSource{}, &stubPrompter{})
	if err == nil {
		t.Fatal("ResolveRates() expected an error when the prompter cannot answer")
	}
	if want := c.String(); !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name the pair %q", err, want)
	}
}

func TestRates_Missing(t *testing.T) {
	rates := Rates{}
	_, err := rates.Rate(Conversion{From: eth, To: usd})

	var missing *MissingRateError
	if !errors.As(err, &missing) {
		t.Fatalf("Rate() error = %v, want a MissingRateError", err)
	}
	if missing.Conversion.From != eth {
		t.Errorf("error names conversion %s, want from %s", missing.Conversion, eth)
	}
}
