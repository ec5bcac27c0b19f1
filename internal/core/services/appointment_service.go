package services

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"github.com/google/uuid"
)

type AppointmentService struct {
	store     out.AppointmentStorePort
	publisher out.EventPublisherPort
	logger    out.LoggerPort
	now       func() time.Time
}

func NewAppointmentService(
	store out.AppointmentStorePort,
	publisher out.EventPublisherPort,
	logger out.LoggerPort,
) *AppointmentService {
	return &AppointmentService{
		store:     store,
		publisher: publisher,
		logger:    logger.WithModule("AppointmentService"),
		now:       time.Now,
	}
}

func (s *AppointmentService) Book(ctx context.Context, req in.BookAppointmentRequest) (*domain.Appointment, error) {
	now := s.now()

	appointment := domain.Appointment{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		TechnicianID:  req.TechnicianID,
		ServiceType:   req.ServiceType,
		Status:        domain.NewStatusRecord(domain.AppointmentStatusScheduled, false),
		Diagnosis:     req.Diagnosis,
		Location:      req.Location,
		ScheduledDate: req.ScheduledDate,
		CreatedAt:     now,
	}

	if err := s.store.Insert(ctx, appointment); err != nil {
		s.logger.Error("appointment.book.persist_failed", out.LogFields{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("appointment.booked", out.LogFields{
		"appointmentId": appointment.ID,
		"userId":        req.UserID,
		"technicianId":  req.TechnicianID,
	})

	s.publish(ctx, &appointment, domain.ActorCustomer, domain.ActionBook, "")

	return &appointment, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.store.GetByID(ctx, id)
}

func (s *AppointmentService) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *AppointmentService) ListForTechnician(ctx context.Context, technicianID string) ([]domain.Appointment, error) {
	return s.store.ListByTechnician(ctx, technicianID)
}

func (s *AppointmentService) Accept(ctx context.Context, id, technicianID string) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.ActorTechnician, technicianID, domain.ActionAccept, "",
		func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate) {
			update["acceptedAt"] = now
		})
}

func (s *AppointmentService) Reject(ctx context.Context, id, technicianID, reason string) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.ActorTechnician, technicianID, domain.ActionReject, reason,
		func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate) {
			update["rejectedAt"] = now
			update["rejectionReason"] = reason
		})
}

func (s *AppointmentService) Cancel(ctx context.Context, id, userID, reason string) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.ActorCustomer, userID, domain.ActionCancel, reason,
		func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate) {
			update["cancelledAt"] = now
			update["cancellationReason"] = reason
		})
}

// MarkArrived - под-шаг внутри Accepted, только для home-service.
// Глобальный статус не меняется, меняются тексты сторон и arrivedAt.
func (s *AppointmentService) MarkArrived(ctx context.Context, id, technicianID string) (*domain.Appointment, error) {
	appointment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.TechnicianID != technicianID {
		return nil, domain.ErrActorMismatch
	}
	if appointment.ServiceType != domain.ServiceTypeHomeService {
		return nil, domain.ErrArriveNotApplicable
	}

	next, err := domain.NextStatus(appointment.Status.Global, domain.ActorTechnician, domain.ActionArrive)
	if err != nil {
		return nil, err
	}

	now := s.now()
	update := out.AppointmentUpdate{
		"status":    domain.NewStatusRecord(next, true),
		"arrivedAt": now,
	}

	updated, err := s.store.UpdateStatusIf(ctx, id, []domain.AppointmentStatus{appointment.Status.Global}, update)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, updated, domain.ActorTechnician, domain.ActionArrive, "")

	return updated, nil
}

// StartRepair дополнительно закрыт проверкой незавершенного ремонта:
// у техника не может быть двух заявок в Repairing/Testing одновременно
func (s *AppointmentService) StartRepair(ctx context.Context, id, technicianID string, estimatedCompletion time.Time) (*domain.Appointment, error) {
	inProgress, err := s.store.CountByTechnicianAndStatus(ctx, technicianID, []domain.AppointmentStatus{
		domain.AppointmentStatusRepairing,
		domain.AppointmentStatusTesting,
	})
	if err != nil {
		return nil, err
	}
	if inProgress > 0 {
		return nil, domain.ErrOngoingRepair
	}

	return s.transition(ctx, id, domain.ActorTechnician, technicianID, domain.ActionStartRepair, "",
		func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate) {
			update["repairStartedAt"] = now
			update["estimatedCompletionDate"] = estimatedCompletion
		})
}

func (s *AppointmentService) StartTesting(ctx context.Context, id, technicianID string) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.ActorTechnician, technicianID, domain.ActionStartTesting, "",
		func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate) {
			update["testingStartedAt"] = now
		})
}

func (s *AppointmentService) Complete(ctx context.Context, id, technicianID string) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.ActorTechnician, technicianID, domain.ActionComplete, "",
		func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate) {
			update["completedAt"] = now
		})
}

// transition - общий путь всех переходов: валидация по таблице,
// условная запись по наблюдаемому статусу, событие контрагенту
func (s *AppointmentService) transition(
	ctx context.Context,
	id string,
	actor domain.Actor,
	actorID string,
	action domain.Action,
	reason string,
	stamp func(next domain.AppointmentStatus, now time.Time, update out.AppointmentUpdate),
) (*domain.Appointment, error) {
	if action.ReasonRequired() && reason == "" {
		return nil, domain.ErrReasonRequired
	}

	appointment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor == domain.ActorCustomer && appointment.UserID != actorID {
		return nil, domain.ErrActorMismatch
	}
	if actor == domain.ActorTechnician && appointment.TechnicianID != actorID {
		return nil, domain.ErrActorMismatch
	}

	next, err := domain.NextStatus(appointment.Status.Global, actor, action)
	if err != nil {
		s.logger.Warn("appointment.transition.rejected", out.LogFields{
			"appointmentId": id,
			"from":          appointment.Status.Global,
			"actor":         actor,
			"action":        action,
			"error":         err.Error(),
		})
		return nil, err
	}

	now := s.now()
	update := out.AppointmentUpdate{
		"status": domain.NewStatusRecord(next, false),
	}
	stamp(next, now, update)

	updated, err := s.store.UpdateStatusIf(ctx, id, []domain.AppointmentStatus{appointment.Status.Global}, update)
	if err != nil {
		s.logger.Error("appointment.transition.persist_failed", out.LogFields{
			"appointmentId": id,
			"action":        action,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.logger.Info("appointment.transition", out.LogFields{
		"appointmentId": id,
		"from":          appointment.Status.Global,
		"to":            next,
		"actor":         actor,
		"action":        action,
	})

	s.publish(ctx, updated, actor, action, reason)

	return updated, nil
}

// publish - fire-and-forget, ошибка публикации не откатывает переход
func (s *AppointmentService) publish(ctx context.Context, appointment *domain.Appointment, actor domain.Actor, action domain.Action, reason string) {
	if s.publisher == nil {
		return
	}

	recipient := appointment.CounterpartyID(actor)
	message := appointment.Status.UserView
	if recipient == appointment.TechnicianID {
		message = appointment.Status.TechnicianView
	}

	event := domain.AppointmentEvent{
		AppointmentID: appointment.ID,
		Action:        action,
		Actor:         actor,
		Status:        appointment.Status.Global,
		RecipientID:   recipient,
		Message:       message,
		Reason:        reason,
		OccurredAt:    s.now(),
	}

	if err := s.publisher.PublishAppointmentEvent(ctx, event); err != nil {
		s.logger.Error("appointment.event.publish_failed", out.LogFields{
			"appointmentId": appointment.ID,
			"action":        action,
			"error":         err.Error(),
		})
	}
}
