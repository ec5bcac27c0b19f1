package in

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type TechnicianUseCase interface {
	Get(ctx context.Context, id string) (*domain.Technician, error)

	// SetAvailability применяет защиту: выключить доступность нельзя,
	// пока за техником числятся активные заявки
	SetAvailability(ctx context.Context, id string, available bool) error

	SetPhoto(ctx context.Context, id string, filename string, data []byte) (string, error)
}

type UserUseCase interface {
	SaveSelectedLocation(ctx context.Context, userID string, location domain.GeoPoint) error
	GetSelectedLocation(ctx context.Context, userID string) (*domain.GeoPoint, error)
}
