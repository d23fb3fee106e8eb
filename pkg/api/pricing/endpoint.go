package pricing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/moonticket/backend/config"
	"github.com/moonticket/backend/pkg/api"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
)

type IEndpoint interface {
	GetUSDPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
}

type Endpoint struct {
	apiGenerator api.Generator
	apiKey       string
}

func New(cfg config.PricingConfigs) *Endpoint {
	return &Endpoint{apiGenerator: api.NewGenerator(cfg.APIEndpoints...), apiKey: cfg.APIKey}
}

type quote struct {
	USD float64 `mapstructure:"usd"`
}

// GetUSDPrice queries a CoinGecko compatible /simple/price endpoint.
func (e *Endpoint) GetUSDPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	client := e.apiGenerator.New("/simple/price").
		Query(api.Parameter{"ids": assetID, "vs_currencies": "usd"})
	if e.apiKey != "" {
		client = client.Header("x-cg-pro-api-key", e.apiKey)
	}

	resp, err := client.GET(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Errorf("Invalid status code: %v", resp.Body)
		return decimal.Zero, fmt.Errorf("invalid status code %d", resp.Code)
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return decimal.Zero, errors.New("invalid body format")
	}

	quotes := map[string]quote{}
	if err := mapstructure.Decode(body, &quotes); err != nil {
		return decimal.Zero, err
	}

	q, ok := quotes[assetID]
	if !ok || q.USD <= 0 {
		return decimal.Zero, fmt.Errorf("no usd price for %s", assetID)
	}

	return decimal.NewFromFloat(q.USD), nil
}
