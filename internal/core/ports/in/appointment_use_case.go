package in

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

type BookAppointmentRequest struct {
	UserID        string
	TechnicianID  string
	ServiceType   domain.ServiceType
	ScheduledDate time.Time
	Diagnosis     domain.DiagnosisSnapshot
	Location      *domain.GeoPoint
}

type AppointmentUseCase interface {
	Book(ctx context.Context, req BookAppointmentRequest) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	ListForTechnician(ctx context.Context, technicianID string) ([]domain.Appointment, error)

	Accept(ctx context.Context, id, technicianID string) (*domain.Appointment, error)
	Reject(ctx context.Context, id, technicianID, reason string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id, userID, reason string) (*domain.Appointment, error)
	MarkArrived(ctx context.Context, id, technicianID string) (*domain.Appointment, error)
	StartRepair(ctx context.Context, id, technicianID string, estimatedCompletion time.Time) (*domain.Appointment, error)
	StartTesting(ctx context.Context, id, technicianID string) (*domain.Appointment, error)
	Complete(ctx context.Context, id, technicianID string) (*domain.Appointment, error)
}
