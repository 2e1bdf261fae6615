package ftx

import (
	"fmt"

	"github.com/khliang/tradecost"
)

// RateQuoter adapts the client to the conversion resolver's RateSource:
// crypto symbols are quoted against fiat by asking the exchange for the
// FROM/TO spot market last price. Any other kind of pair (equities,
// fiat cross rates) is not listed on the exchange and reports
// PriceUnavailable so the resolver falls back to a manual rate.
type RateQuoter struct {
	Client *Client
}

func (r RateQuoter) LastRate(from, to tradecost.Symbol) (tradecost.Quantity, error) {
	if from.Type != tradecost.Crypto || to.Type != tradecost.Fiat {
		return tradecost.Quantity{}, &tradecost.PriceUnavailableError{
			Market: from.Name + "/" + to.Name,
			Err:    fmt.Errorf("no listed market for %s pairs", from.Type),
		}
	}
	price, err := r.Client.LastPrice(tradecost.SpotMarket(from.Name, to.Name))
	if err != nil {
		return tradecost.Quantity{}, err
	}
	return tradecost.Q(price.Amount()), nil
}
