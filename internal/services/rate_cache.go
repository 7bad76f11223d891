package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// RateAPI fetches the conversion rate from a currency to EUR.
type RateAPI interface {
	EURRate(ctx context.Context, currency string) (float64, error)
}

// ExchangeRateClient reads EUR rates from a public exchange-rate API.
type ExchangeRateClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewExchangeRateClient() *ExchangeRateClient {
	return &ExchangeRateClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: "https://open.er-api.com",
	}
}

func (c *ExchangeRateClient) EURRate(ctx context.Context, currency string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v6/latest/"+currency, nil)
	if err != nil {
		return 0, fmt.Errorf("exchange rate request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange rate http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("exchange rate bad status: %s", resp.Status)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("exchange rate decode: %w", err)
	}

	rate, ok := payload.Rates["EUR"]
	if !ok {
		return 0, fmt.Errorf("exchange rate missing EUR entry for %s", currency)
	}
	return rate, nil
}

// RateCache memoizes currency→EUR rates for the lifetime of the process.
// Rates are fetched at most once per currency code and never expire;
// staleness over a process lifetime is an accepted tradeoff.
type RateCache struct {
	mu    sync.RWMutex
	rates map[string]float64
	api   RateAPI
}

func NewRateCache(api RateAPI) *RateCache {
	return &RateCache{
		rates: make(map[string]float64),
		api:   api,
	}
}

// EURRate returns the conversion rate to EUR for the given currency.
// EUR itself and unknown/unfetchable currencies resolve to 1.0, which means
// "no conversion"; a failed lookup is memoized so it is not retried.
func (c *RateCache) EURRate(ctx context.Context, currency string) float64 {
	if currency == "" || currency == "EUR" {
		return 1.0
	}

	c.mu.RLock()
	rate, ok := c.rates[currency]
	c.mu.RUnlock()
	if ok {
		return rate
	}

	rate, err := c.api.EURRate(ctx, currency)
	if err != nil {
		log.Printf("Error fetching EUR rate for %s: %v", currency, err)
		rate = 1.0
	}

	c.mu.Lock()
	c.rates[currency] = rate
	c.mu.Unlock()
	return rate
}
