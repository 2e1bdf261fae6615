package tradecost

import (
	"fmt"
	"strings"
)

// SymbolType classifies a symbol by the kind of asset it names.
type SymbolType int

const (
	Crypto SymbolType = iota
	Fiat
	TWStock // equity listed on the Taiwan exchange
	USStock // equity listed on a US exchange
)

func (t SymbolType) String() string {
	switch t {
	case Crypto:
		return "CRYPTO"
	case Fiat:
		return "FIAT"
	case TWStock:
		return "TW_STOCK"
	case USStock:
		return "US_STOCK"
	default:
		return "unknown"
	}
}

// ParseSymbolType parses a string into a SymbolType.
func ParseSymbolType(s string) (SymbolType, error) {
	switch s {
	case "CRYPTO":
		return Crypto, nil
	case "FIAT":
		return Fiat, nil
	case "TW_STOCK":
		return TWStock, nil
	case "US_STOCK":
		return USStock, nil
	default:
		return 0, fmt.Errorf("unknown symbol type: %q", s)
	}
}

// Symbol identifies an asset, globally unique by (type, name).
type Symbol struct {
	Type SymbolType
	Name string
}

// String returns the full name of the symbol, e.g. "CRYPTO.ETH".
func (s Symbol) String() string { return s.Type.String() + "." + s.Name }

// ParseSymbol parses a full name like "CRYPTO.ETH" into a registered Symbol.
func ParseSymbol(fullName string) (Symbol, error) {
	typeName, name, found := strings.Cut(fullName, ".")
	if !found {
		return Symbol{}, fmt.Errorf("symbol %q is not in TYPE.NAME form", fullName)
	}
	typ, err := ParseSymbolType(typeName)
	if err != nil {
		return Symbol{}, fmt.Errorf("symbol %q: %w", fullName, err)
	}
	sym := Symbol{Type: typ, Name: name}
	if !registered[sym] {
		return Symbol{}, fmt.Errorf("symbol %q is not a known symbol", fullName)
	}
	return sym, nil
}

// DefaultQuote returns the configured reporting unit for a symbol type.
// Every asset of a given type is converted into this unit by portfolio
// reports.
func (t SymbolType) DefaultQuote() Symbol {
	switch t {
	case Crypto, USStock:
		return Symbol{Type: Fiat, Name: "USD"}
	default: // Fiat, TWStock
		return Symbol{Type: Fiat, Name: "TWD"}
	}
}

// allSymbols is the static registry of known symbols.
var allSymbols = []Symbol{
	{Crypto, "BNB"}, {Crypto, "BTC"}, {Crypto, "COIN"}, {Crypto, "DOGE"},
	{Crypto, "ETH"}, {Crypto, "FTT"}, {Crypto, "GRT"}, {Crypto, "KIN"},
	{Crypto, "LINK"}, {Crypto, "MAPS"}, {Crypto, "MER"}, {Crypto, "OXY"},
	{Crypto, "RAY"}, {Crypto, "REEF"}, {Crypto, "SOL"}, {Crypto, "SRM"},
	{Crypto, "SUSHI"}, {Crypto, "SXP"}, {Crypto, "TRX"}, {Crypto, "UNI"},
	{Crypto, "ZRX"},

	{Fiat, "TWD"}, {Fiat, "USD"},

	{USStock, "AAPL"}, {USStock, "DIS"}, {USStock, "GOOG"}, {USStock, "NIO"},
	{USStock, "SE"}, {USStock, "TSLA"}, {USStock, "TSM"},

	{TWStock, "2330"}, {TWStock, "0050"},
}

var registered = func() map[Symbol]bool {
	m := make(map[Symbol]bool, len(allSymbols))
	for _, s := range allSymbols {
		m[s] = true
	}
	return m
}()
