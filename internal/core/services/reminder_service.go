package services

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

// ReminderService раз в день рассылает напоминания по принятым
// заявкам, запланированным на сегодня
type ReminderService struct {
	store     out.AppointmentStorePort
	publisher out.EventPublisherPort
	logger    out.LoggerPort
	now       func() time.Time
}

func NewReminderService(
	store out.AppointmentStorePort,
	publisher out.EventPublisherPort,
	logger out.LoggerPort,
) *ReminderService {
	return &ReminderService{
		store:     store,
		publisher: publisher,
		logger:    logger.WithModule("ReminderService"),
		now:       time.Now,
	}
}

// SendDailyReminders - точка входа для cron
func (s *ReminderService) SendDailyReminders() {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := s.now()

	appointments, err := s.store.ListAcceptedForDate(ctx, now)
	if err != nil {
		s.logger.Error("reminders.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return
	}

	sent := 0
	for _, appointment := range appointments {
		// Обеим сторонам по событию
		for _, recipient := range []string{appointment.UserID, appointment.TechnicianID} {
			event := domain.AppointmentEvent{
				AppointmentID: appointment.ID,
				Action:        domain.ActionReminder,
				Status:        appointment.Status.Global,
				RecipientID:   recipient,
				Message:       "You have an appointment scheduled for today",
				OccurredAt:    now,
			}
			if err := s.publisher.PublishAppointmentEvent(ctx, event); err != nil {
				s.logger.Error("reminders.publish_failed", out.LogFields{
					"appointmentId": appointment.ID,
					"recipientId":   recipient,
					"error":         err.Error(),
				})
				continue
			}
			sent++
		}
	}

	s.logger.Info("reminders.sent", out.LogFields{
		"appointments": len(appointments),
		"events":       sent,
	})
}
