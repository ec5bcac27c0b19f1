package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

// ExchangeRateAdapter - курс USD к локальной валюте из публичного API
type ExchangeRateAdapter struct {
	client   *http.Client
	url      string
	currency string
	logger   out.LoggerPort
}

type ratesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func NewExchangeRateAdapter(cfg *config.Config, logger out.LoggerPort) *ExchangeRateAdapter {
	return &ExchangeRateAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		url:      cfg.Rates.URL,
		currency: cfg.Rates.Currency,
		logger:   logger,
	}
}

func (a *ExchangeRateAdapter) GetUSDRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("rates.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("rates.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}

	rate, ok := parsed.Rates[a.currency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no usable %s rate in response", a.currency)
	}

	a.logger.Debug("rates.fetch_success", out.LogFields{
		"currency": a.currency,
		"rate":     rate,
	})

	return rate, nil
}
