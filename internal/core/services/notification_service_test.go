package services

import (
	"context"
	"testing"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

func TestRecordEvent(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationService(store, nopLogger{})

	err := service.RecordEvent(context.Background(), domain.AppointmentEvent{
		AppointmentID: "apt-1",
		Action:        domain.ActionReject,
		Actor:         domain.ActorTechnician,
		Status:        domain.AppointmentStatusRejected,
		RecipientID:   "user-1",
		Message:       "The technician declined your appointment",
		Reason:        "fully booked this week",
		OccurredAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	notifications, _ := store.ListByUser(context.Background(), "user-1")
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}

	notification := notifications[0]
	if notification.Type != domain.NotificationTypeStatusChange {
		t.Errorf("Type = %s, want status-change", notification.Type)
	}
	if notification.Title != "Appointment declined" {
		t.Errorf("Title = %q", notification.Title)
	}
	if notification.Message != "The technician declined your appointment Reason: fully booked this week" {
		t.Errorf("Message = %q", notification.Message)
	}
	if notification.AppointmentID != "apt-1" {
		t.Errorf("AppointmentID = %q", notification.AppointmentID)
	}
}

func TestRecordEventTypeMapping(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationService(store, nopLogger{})

	cases := []struct {
		action domain.Action
		want   domain.NotificationType
	}{
		{domain.ActionBook, domain.NotificationTypeNewAppointment},
		{domain.ActionReminder, domain.NotificationTypeReminder},
		{domain.ActionAccept, domain.NotificationTypeStatusChange},
		{domain.ActionComplete, domain.NotificationTypeStatusChange},
	}

	for i, tc := range cases {
		recipient := string(rune('a' + i))
		err := service.RecordEvent(context.Background(), domain.AppointmentEvent{
			AppointmentID: "apt-1",
			Action:        tc.action,
			RecipientID:   recipient,
			Message:       "test",
		})
		if err != nil {
			t.Fatalf("RecordEvent(%s): %v", tc.action, err)
		}

		notifications, _ := store.ListByUser(context.Background(), recipient)
		if len(notifications) != 1 || notifications[0].Type != tc.want {
			t.Errorf("action %s mapped to %s, want %s", tc.action, notifications[0].Type, tc.want)
		}
	}
}

func TestRecordOnceDeduplicates(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationService(store, nopLogger{})

	for i := 0; i < 3; i++ {
		err := service.RecordOnce(context.Background(), "user-1", domain.NotificationTypeWelcome, "Welcome", "Welcome to the marketplace")
		if err != nil {
			t.Fatalf("RecordOnce attempt %d: %v", i, err)
		}
	}

	notifications, _ := store.ListByUser(context.Background(), "user-1")
	if len(notifications) != 1 {
		t.Errorf("welcome notifications = %d, want exactly 1", len(notifications))
	}
}

func TestRecordOnceNonOneTimeNotDeduplicated(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationService(store, nopLogger{})

	for i := 0; i < 2; i++ {
		err := service.RecordOnce(context.Background(), "user-1", domain.NotificationTypeRatingReceived, "New rating", "You received a rating")
		if err != nil {
			t.Fatalf("RecordOnce attempt %d: %v", i, err)
		}
	}

	notifications, _ := store.ListByUser(context.Background(), "user-1")
	if len(notifications) != 2 {
		t.Errorf("rating notifications = %d, want 2", len(notifications))
	}
}
