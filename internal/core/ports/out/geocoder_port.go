package out

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type GeocoderPort interface {
	// Reverse - адрес по координатам
	Reverse(ctx context.Context, lat, lon float64) (*domain.GeoPoint, error)

	// Forward - координаты по строке запроса
	Forward(ctx context.Context, query string) (*domain.GeoPoint, error)
}
