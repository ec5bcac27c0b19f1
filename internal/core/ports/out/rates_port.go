package out

import "context"

// ExchangeRatePort - курс USD к локальной валюте
type ExchangeRatePort interface {
	GetUSDRate(ctx context.Context) (float64, error)
}
