package in

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type GeocodingUseCase interface {
	// Reverse не возвращает ошибку: в худшем случае адресом будут
	// сырые координаты
	Reverse(ctx context.Context, lat, lon float64) *domain.GeoPoint

	Forward(ctx context.Context, query string) (*domain.GeoPoint, error)
}
