// Package ftx implements a small client for the FTX exchange REST API,
// covering the endpoints the cost analysis needs: authenticated trade
// fills (paginated) and public market last prices.
package ftx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/khliang/tradecost"
)

const (
	defaultBaseURL    = "https://ftx.com/api"
	defaultAPITimeout = 5 * time.Second

	// fillsPageSize is the number of fills per response page. A page
	// shorter than this is the last one.
	fillsPageSize = 20
)

// Client calls the FTX REST API. The zero credentials are fine for
// public endpoints; fills require APIKey and APISecret.
type Client struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	Subaccount string
	HTTPClient *http.Client // injectable for tests; defaults to a 5s-timeout client
}

// New returns a client with the default base URL and timeout.
func New(apiKey, apiSecret, subaccount string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		Subaccount: subaccount,
		HTTPClient: &http.Client{Timeout: defaultAPITimeout},
	}
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return defaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{Timeout: defaultAPITimeout}
	}
	return c.HTTPClient
}

// get performs a GET request, optionally signed, and decodes the JSON
// body into data.
func (c *Client) get(path string, params url.Values, sign bool, data any) error {
	addr := c.baseURL() + path
	if len(params) > 0 {
		addr += "?" + params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	if sign {
		c.signRequest(req)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}

// signRequest adds the FTX authentication headers: an HMAC-SHA256 of
// "<ts millis><method><path?query>" keyed by the API secret.
func (c *Client) signRequest(req *http.Request) {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	payload := ts + req.Method + req.URL.RequestURI()
	mac := hmac.New(sha256.New, []byte(c.APISecret))
	mac.Write([]byte(payload))
	req.Header.Set("FTX-KEY", c.APIKey)
	req.Header.Set("FTX-SIGN", hex.EncodeToString(mac.Sum(nil)))
	req.Header.Set("FTX-TS", ts)
	if c.Subaccount != "" {
		req.Header.Set("FTX-SUBACCOUNT", url.QueryEscape(c.Subaccount))
	}
}

// LastPrice returns the last traded price of a market, in the market's
// quote unit. Any failure (transport, status, payload shape) is
// reported as a PriceUnavailableError.
func (c *Client) LastPrice(market tradecost.Market) (tradecost.Money, error) {
	var payload any
	err := c.get("/markets/"+url.PathEscape(string(market)), nil, false, &payload)
	if err != nil {
		return tradecost.Money{}, &tradecost.PriceUnavailableError{Market: string(market), Err: err}
	}
	// the payload nests the market object under "result"; pick the one
	// field of interest instead of modelling the whole response
	jval, err := jsonpath.Get("$.result.last", payload)
	if err != nil {
		return tradecost.Money{}, &tradecost.PriceUnavailableError{Market: string(market), Err: err}
	}
	last, ok := jval.(float64)
	if !ok {
		return tradecost.Money{}, &tradecost.PriceUnavailableError{Market: string(market), Err: fmt.Errorf("last price is not a number: %v", jval)}
	}
	return tradecost.M(decimal.NewFromFloat(last), market.Quote()), nil
}

// fillPayload is one fill record as returned by GET /fills. Numbers are
// kept as json.Number so no precision is lost on the way to decimals.
type fillPayload struct {
	ID     json.Number `json:"id"`
	Market string      `json:"market"`
	Side   string      `json:"side"`
	Size   json.Number `json:"size"`
	Price  json.Number `json:"price"`
	Time   string      `json:"time"`
}

// Fills returns all the account's fills on a market between start and
// end, oldest bound exclusive semantics left to the API. The endpoint
// is paginated: each page is fetched with the end bound moved down to
// the earliest fill of the previous page, so boundary fills can appear
// twice; duplicates are dropped by fill id here, and the aggregator
// deduplicates again by the same id. Pages are fetched strictly
// sequentially since each request depends on the previous response.
func (c *Client) Fills(market tradecost.Market, start, end time.Time) ([]tradecost.Fill, error) {
	params := url.Values{}
	params.Set("market", string(market))
	params.Set("start_time", formatTimestamp(start))
	params.Set("end_time", formatTimestamp(end))

	var all []tradecost.Fill
	seen := make(map[string]bool)
	for {
		var payload struct {
			Result []fillPayload `json:"result"`
		}
		if err := c.get("/fills", params, true, &payload); err != nil {
			return nil, fmt.Errorf("fetching fills for %s: %w", market, err)
		}

		var pageMin time.Time
		fresh := 0
		for _, p := range payload.Result {
			f, err := parseFill(p)
			if err != nil {
				return nil, err
			}
			if seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			all = append(all, f)
			fresh++
			if pageMin.IsZero() || f.Time.Before(pageMin) {
				pageMin = f.Time
			}
		}

		if fresh < fillsPageSize {
			break
		}
		params.Set("end_time", formatTimestamp(pageMin))
	}
	return all, nil
}

// formatTimestamp renders a time as a unix timestamp with fractional
// seconds. Fill times carry fractions, so a whole-second page bound
// would exclude fills sharing the boundary second with an earlier
// fraction, leaving a gap in the history.
func formatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%09d", t.Unix(), t.Nanosecond())
}

// parseFill converts a wire fill into the accounting model.
func parseFill(p fillPayload) (tradecost.Fill, error) {
	size, err := decimal.NewFromString(p.Size.String())
	if err != nil {
		return tradecost.Fill{}, fmt.Errorf("fill %s: bad size %q: %w", p.ID, p.Size, err)
	}
	price, err := decimal.NewFromString(p.Price.String())
	if err != nil {
		return tradecost.Fill{}, fmt.Errorf("fill %s: bad price %q: %w", p.ID, p.Price, err)
	}
	side, err := tradecost.ParseSide(p.Side)
	if err != nil {
		return tradecost.Fill{}, fmt.Errorf("fill %s: %w", p.ID, err)
	}
	when, err := time.Parse(time.RFC3339, p.Time)
	if err != nil {
		return tradecost.Fill{}, fmt.Errorf("fill %s: bad time %q: %w", p.ID, p.Time, err)
	}
	market := tradecost.Market(p.Market)
	return tradecost.Fill{
		ID:     p.ID.String(),
		Market: market,
		Side:   side,
		Size:   tradecost.Q(size),
		Price:  tradecost.M(price, market.Quote()),
		Time:   when,
	}, nil
}
