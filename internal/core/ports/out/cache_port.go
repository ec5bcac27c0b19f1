package out

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type CachePort interface {
	// Кэширование готовых оценок по предопределенным неисправностям
	GetEstimate(ctx context.Context, key string) (*domain.Estimate, bool)
	StoreEstimate(ctx context.Context, key string, estimate domain.Estimate)

	// Кэширование курса валюты
	GetUSDRate(ctx context.Context) (float64, bool)
	StoreUSDRate(ctx context.Context, rate float64)
}
