package services

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"github.com/google/uuid"
)

type NotificationService struct {
	store  out.NotificationStorePort
	logger out.LoggerPort
	now    func() time.Time
}

func NewNotificationService(store out.NotificationStorePort, logger out.LoggerPort) *NotificationService {
	return &NotificationService{
		store:  store,
		logger: logger.WithModule("NotificationService"),
		now:    time.Now,
	}
}

// RecordEvent сохраняет человекочитаемое уведомление получателю
// события перехода
func (s *NotificationService) RecordEvent(ctx context.Context, event domain.AppointmentEvent) error {
	notificationType := domain.NotificationTypeStatusChange
	switch event.Action {
	case domain.ActionBook:
		notificationType = domain.NotificationTypeNewAppointment
	case domain.ActionReminder:
		notificationType = domain.NotificationTypeReminder
	}

	message := event.Message
	if event.Reason != "" {
		message = message + " Reason: " + event.Reason
	}

	notification := domain.Notification{
		ID:            uuid.NewString(),
		UserID:        event.RecipientID,
		Type:          notificationType,
		Title:         notificationTitle(event.Action),
		Message:       message,
		AppointmentID: event.AppointmentID,
		CreatedAt:     s.now(),
	}

	if err := s.store.Insert(ctx, notification); err != nil {
		s.logger.Error("notification.record_failed", out.LogFields{
			"userId":        event.RecipientID,
			"appointmentId": event.AppointmentID,
			"error":         err.Error(),
		})
		return err
	}

	s.logger.Debug("notification.recorded", out.LogFields{
		"userId": event.RecipientID,
		"type":   notificationType,
	})

	return nil
}

// RecordOnce - одноразовые уведомления. Детерминированный id по
// (userId, type) делает вставку insert-if-absent, дубликат молча
// игнорируется.
func (s *NotificationService) RecordOnce(ctx context.Context, userID string, notificationType domain.NotificationType, title, message string) error {
	id := uuid.NewString()
	if notificationType.IsOneTime() {
		id = domain.OneTimeNotificationID(userID, notificationType)
	}

	notification := domain.Notification{
		ID:        id,
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
	}

	inserted, err := s.store.InsertIfAbsent(ctx, notification)
	if err != nil {
		s.logger.Error("notification.record_once_failed", out.LogFields{
			"userId": userID,
			"type":   notificationType,
			"error":  err.Error(),
		})
		return err
	}

	if !inserted {
		s.logger.Debug("notification.record_once_duplicate", out.LogFields{
			"userId": userID,
			"type":   notificationType,
		})
	}

	return nil
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.store.ListByUser(ctx, userID)
}

func notificationTitle(action domain.Action) string {
	switch action {
	case domain.ActionBook:
		return "New appointment"
	case domain.ActionAccept:
		return "Appointment accepted"
	case domain.ActionReject:
		return "Appointment declined"
	case domain.ActionCancel:
		return "Appointment cancelled"
	case domain.ActionArrive:
		return "Technician arrived"
	case domain.ActionStartRepair:
		return "Repair started"
	case domain.ActionStartTesting:
		return "Testing started"
	case domain.ActionComplete:
		return "Repair completed"
	case domain.ActionReminder:
		return "Appointment reminder"
	}
	return "Appointment update"
}
