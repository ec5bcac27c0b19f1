package services

import (
	"testing"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
)

func TestSendDailyReminders(t *testing.T) {
	store := newFakeAppointmentStore()
	publisher := &fakePublisher{}
	service := NewReminderService(store, publisher, nopLogger{})

	today := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return today }

	// Принятая заявка на сегодня - напоминание обеим сторонам
	store.appointments["apt-1"] = &domain.Appointment{
		ID:            "apt-1",
		UserID:        "user-1",
		TechnicianID:  "tech-1",
		Status:        domain.NewStatusRecord(domain.AppointmentStatusAccepted, false),
		ScheduledDate: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
	}
	// Принятая, но на завтра - не попадает
	store.appointments["apt-2"] = &domain.Appointment{
		ID:            "apt-2",
		UserID:        "user-2",
		TechnicianID:  "tech-2",
		Status:        domain.NewStatusRecord(domain.AppointmentStatusAccepted, false),
		ScheduledDate: time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC),
	}
	// Сегодняшняя, но еще не принята - не попадает
	store.appointments["apt-3"] = &domain.Appointment{
		ID:            "apt-3",
		UserID:        "user-3",
		TechnicianID:  "tech-3",
		Status:        domain.NewStatusRecord(domain.AppointmentStatusScheduled, false),
		ScheduledDate: time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC),
	}

	service.SendDailyReminders()

	if len(publisher.events) != 2 {
		t.Fatalf("events = %d, want 2", len(publisher.events))
	}

	recipients := map[string]bool{}
	for _, event := range publisher.events {
		if event.Action != domain.ActionReminder {
			t.Errorf("event action = %s, want reminder", event.Action)
		}
		if event.AppointmentID != "apt-1" {
			t.Errorf("event appointment = %s, want apt-1", event.AppointmentID)
		}
		recipients[event.RecipientID] = true
	}
	if !recipients["user-1"] || !recipients["tech-1"] {
		t.Errorf("reminders must reach both parties, got %v", recipients)
	}
}

func TestSendDailyRemindersWithoutPublisher(t *testing.T) {
	store := newFakeAppointmentStore()
	service := NewReminderService(store, nil, nopLogger{})

	// Не должно паниковать
	service.SendDailyReminders()
}
