package pricing

import (
	"context"
	"net/http"
	"testing"

	"github.com/moonticket/backend/pkg/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newEndpoint(resp *api.Response) *Endpoint {
	gen := &api.MockAPIGenerator{}
	gen.MockClient.GETFunc = func(ctx context.Context) (*api.Response, error) {
		return resp, nil
	}

	return &Endpoint{apiGenerator: gen}
}

func TestEndpoint_GetUSDPrice(t *testing.T) {
	e := newEndpoint(&api.Response{
		Code: http.StatusOK,
		Body: api.JSON{"solana": map[string]any{"usd": 150.25}},
	})

	price, err := e.GetUSDPrice(context.Background(), "solana")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("150.25").Equal(price))
}

func TestEndpoint_GetUSDPriceMissingAsset(t *testing.T) {
	e := newEndpoint(&api.Response{Code: http.StatusOK, Body: api.JSON{}})

	_, err := e.GetUSDPrice(context.Background(), "solana")
	require.Error(t, err)
}

func TestEndpoint_GetUSDPriceBadStatus(t *testing.T) {
	e := newEndpoint(&api.Response{Code: http.StatusTooManyRequests, Body: api.JSON{}})

	_, err := e.GetUSDPrice(context.Background(), "solana")
	require.Error(t, err)
}

func TestEndpoint_GetUSDPriceAPIKey(t *testing.T) {
	gen := &api.MockAPIGenerator{}
	headers := map[string]string{}
	gen.MockClient.HeaderFunc = func(name, value string) api.Client {
		headers[name] = value
		return &gen.MockClient
	}
	gen.MockClient.GETFunc = func(ctx context.Context) (*api.Response, error) {
		return &api.Response{
			Code: http.StatusOK,
			Body: api.JSON{"solana": map[string]any{"usd": 1.0}},
		}, nil
	}

	e := &Endpoint{apiGenerator: gen}
	_, err := e.GetUSDPrice(context.Background(), "solana")
	require.NoError(t, err)
	require.Empty(t, headers)

	e.apiKey = "secret"
	_, err = e.GetUSDPrice(context.Background(), "solana")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"x-cg-pro-api-key": "secret"}, headers)
}
