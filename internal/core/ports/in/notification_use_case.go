package in

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type NotificationUseCase interface {
	// RecordEvent сохраняет человекочитаемое уведомление получателю события
	RecordEvent(ctx context.Context, event domain.AppointmentEvent) error

	List(ctx context.Context, userID string) ([]domain.Notification, error)
}
