package tradecost

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Asset is a quantity of a symbol held in a portfolio.
type Asset struct {
	Symbol   Symbol
	Quantity Quantity
}

// TargetSymbol returns the unit this asset is reported in, the default
// quote symbol configured for its type.
func (a Asset) TargetSymbol() Symbol { return a.Symbol.Type.DefaultQuote() }

func (a Asset) String() string {
	return fmt.Sprintf("%s: %s", a.Symbol, a.Quantity)
}

// UnmarshalYAML reads an asset from its configuration form:
//
//	symbol: CRYPTO.ETH
//	quantity: "1.5"
func (a *Asset) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Symbol   string `yaml:"symbol"`
		Quantity string `yaml:"quantity"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	sym, err := ParseSymbol(raw.Symbol)
	if err != nil {
		return err
	}
	qty, err := ParseQuantity(raw.Quantity)
	if err != nil {
		return fmt.Errorf("asset %s: bad quantity %q: %w", sym, raw.Quantity, err)
	}
	a.Symbol = sym
	a.Quantity = qty
	return nil
}

// Portfolio is a named collection of asset holdings. It is read from
// configuration and never mutated: conversions produce new Asset values.
type Portfolio struct {
	Name   string  `yaml:"name"`
	Assets []Asset `yaml:"assets"`
}

// RequiredConversions returns the deduplicated conversions needed to
// report every asset of this portfolio in its target unit, in first-use
// order.
func (p Portfolio) RequiredConversions() []Conversion {
	var required []Conversion
	known := make(map[Conversion]bool)
	for _, a := range p.Assets {
		c := Conversion{From: a.Symbol, To: a.TargetSymbol()}
		if known[c] {
			continue
		}
		known[c] = true
		required = append(required, c)
	}
	return required
}

// Convert converts every asset to its target unit, preserving order so
// callers can show original and converted values side by side.
func (p Portfolio) Convert(rates Rates) ([]Asset, error) {
	converted := make([]Asset, 0, len(p.Assets))
	for _, a := range p.Assets {
		rate, err := rates.Rate(Conversion{From: a.Symbol, To: a.TargetSymbol()})
		if err != nil {
			return nil, fmt.Errorf("portfolio %q: %w", p.Name, err)
		}
		converted = append(converted, Asset{
			Symbol:   a.TargetSymbol(),
			Quantity: a.Quantity.Mul(rate),
		})
	}
	return converted, nil
}

// Totals converts every asset and sums the results per target unit.
// The fold is order independent; the output is sorted by symbol name
// for deterministic reports.
func (p Portfolio) Totals(rates Rates) ([]Asset, error) {
	converted, err := p.Convert(rates)
	if err != nil {
		return nil, err
	}
	return sumBySymbol(converted), nil
}

// sumBySymbol folds assets into one total per symbol, sorted by full name.
func sumBySymbol(assets []Asset) []Asset {
	totals := make(map[Symbol]Quantity)
	for _, a := range assets {
		totals[a.Symbol] = totals[a.Symbol].Add(a.Quantity)
	}
	result := make([]Asset, 0, len(totals))
	for sym, qty := range totals {
		result = append(result, Asset{Symbol: sym, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Symbol.String() < result[j].Symbol.String()
	})
	return result
}

// LoadPortfolios reads the portfolio configuration file:
//
//	Portfolios:
//	  - name: main
//	    assets:
//	      - symbol: CRYPTO.ETH
//	        quantity: "1.5"
func LoadPortfolios(path string) ([]Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolios: %w", err)
	}
	var file struct {
		Portfolios []Portfolio `yaml:"Portfolios"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse portfolios %q: %w", path, err)
	}
	return file.Portfolios, nil
}
