package prices

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// MarketData supplies a time-ordered daily close series for a symbol.
type MarketData interface {
	Closes(ctx context.Context, symbol string) ([]float64, error)
}

// YahooClient reads daily close prices from the Yahoo Finance v8 chart API.
type YahooClient struct {
	client  *resty.Client
	baseURL string
}

func NewYahooClient(timeout time.Duration) *YahooClient {
	return &YahooClient{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; chole-pipeline/1.0)"),
		baseURL: "https://query1.finance.yahoo.com",
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Closes returns the close prices of the last two trading days, oldest
// first. Nil close slots (half sessions, pre-open) are skipped.
func (y *YahooClient) Closes(ctx context.Context, symbol string) ([]float64, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=5d&interval=1d", y.baseURL, url.PathEscape(symbol))

	var resp chartResponse
	httpResp, err := y.client.R().
		SetContext(ctx).
		SetResult(&resp).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("chart request for %s: %w", symbol, err)
	}
	if httpResp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("chart request for %s: unexpected status %d", symbol, httpResp.StatusCode())
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", symbol, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}

	var closes []float64
	for _, c := range resp.Chart.Result[0].Indicators.Quote[0].Close {
		if c != nil {
			closes = append(closes, *c)
		}
	}

	if len(closes) > 2 {
		closes = closes[len(closes)-2:]
	}
	return closes, nil
}
