package out

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

// EventPublisherPort - fire-and-forget публикация событий заявок.
// Ошибки публикации логируются вызывающей стороной и никогда
// не откатывают сам переход.
type EventPublisherPort interface {
	PublishAppointmentEvent(ctx context.Context, event domain.AppointmentEvent) error
}
