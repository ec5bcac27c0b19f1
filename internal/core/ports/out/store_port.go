package out

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

// AppointmentUpdate - частичное обновление документа заявки.
// Ключи - dotted-path поля ("status.global", "acceptedAt" и т.д.)
type AppointmentUpdate map[string]interface{}

type AppointmentStorePort interface {
	Insert(ctx context.Context, appointment domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]domain.Appointment, error)

	// UpdateStatusIf применяет обновление только если текущий
	// status.global входит в expect. Возвращает ErrStatusConflict,
	// если документ уже ушел из ожидаемого состояния.
	UpdateStatusIf(ctx context.Context, id string, expect []domain.AppointmentStatus, update AppointmentUpdate) (*domain.Appointment, error)

	// CountByTechnicianAndStatus - для проверок доступности техника
	CountByTechnicianAndStatus(ctx context.Context, technicianID string, statuses []domain.AppointmentStatus) (int64, error)

	// ListAcceptedForDate - для ежедневных напоминаний
	ListAcceptedForDate(ctx context.Context, day time.Time) ([]domain.Appointment, error)
}

type TechnicianStorePort interface {
	GetByID(ctx context.Context, id string) (*domain.Technician, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	SetPhotoURL(ctx context.Context, id string, url string) error
}

type UserStorePort interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetSelectedLocation(ctx context.Context, id string, location domain.GeoPoint) error
}

type DiagnosisStorePort interface {
	Insert(ctx context.Context, diagnosis domain.Diagnosis) error
}

type NotificationStorePort interface {
	Insert(ctx context.Context, notification domain.Notification) error

	// InsertIfAbsent - атомарная вставка по детерминированному id,
	// true если запись действительно создана
	InsertIfAbsent(ctx context.Context, notification domain.Notification) (bool, error)

	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
}
