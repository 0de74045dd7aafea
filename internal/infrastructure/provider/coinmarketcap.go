package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"quotes-service/internal/application"
	"quotes-service/internal/infrastructure/httpx"
)

const (
	cmcQuotesLatestPath = "/v2/cryptocurrency/quotes/latest"
	cmcAPIKeyHeader     = "X-CMC_PRO_API_KEY"
)

// CoinMarketCap fetches latest quotes by catalog id from the CMC Pro API.
type CoinMarketCap struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.PriceProvider = (*CoinMarketCap)(nil)

type cmcStatus struct {
	ErrorCode    int     `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

type cmcQuotesResp struct {
	Status cmcStatus       `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type cmcAsset struct {
	Quote map[string]struct {
		Price *float64 `json:"price"`
	} `json:"quote"`
}

func (p *CoinMarketCap) FetchPrice(ctx context.Context, symbolID, convertID string) (float64, bool, error) {
	if p.BaseURL == "" {
		return 0, false, errors.New("coinmarketcap: missing base url")
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return 0, false, fmt.Errorf("coinmarketcap: invalid base url: %w", err)
	}
	u.Path = cmcQuotesLatestPath
	q := u.Query()
	q.Set("id", symbolID)
	q.Set("convert_id", convertID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("coinmarketcap: create request: %w", err)
	}
	req.Header.Set(cmcAPIKeyHeader, p.APIKey)

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body cmcQuotesResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return 0, false, describe(err)
	}
	if body.Status.ErrorCode != 0 {
		return 0, false, fmt.Errorf("coinmarketcap: error %d: %s", body.Status.ErrorCode, deref(body.Status.ErrorMessage))
	}
	price, ok := extractPrice(body.Data, symbolID, convertID)
	return price, ok, nil
}

// extractPrice digs data[symbolID].quote[convertID].price out of the payload.
// Any shape mismatch counts as no price rather than a failure.
func extractPrice(data json.RawMessage, symbolID, convertID string) (float64, bool) {
	var assets map[string]json.RawMessage
	if err := json.Unmarshal(data, &assets); err != nil {
		return 0, false
	}
	raw, ok := assets[symbolID]
	if !ok {
		return 0, false
	}
	var asset cmcAsset
	if err := json.Unmarshal(raw, &asset); err != nil {
		return 0, false
	}
	quote, ok := asset.Quote[convertID]
	if !ok || quote.Price == nil || *quote.Price == 0 {
		return 0, false
	}
	return *quote.Price, true
}

func describe(err error) error {
	var se *httpx.StatusError
	if errors.As(err, &se) {
		var body cmcQuotesResp
		if json.Unmarshal(se.Body, &body) == nil && body.Status.ErrorMessage != nil {
			return fmt.Errorf("coinmarketcap: %s: %w", *body.Status.ErrorMessage, err)
		}
		if len(se.Body) > 0 && !bytes.HasPrefix(se.Body, []byte("{")) {
			return fmt.Errorf("coinmarketcap: %s: %w", se.Body, err)
		}
	}
	return fmt.Errorf("coinmarketcap: %w", err)
}

func deref(s *string) string {
	if s == nil {
		return "unknown error"
	}
	return *s
}
