package domain

import (
	"errors"
	"testing"
)

func TestNextStatusTable(t *testing.T) {
	cases := []struct {
		name   string
		from   AppointmentStatus
		actor  Actor
		action Action
		want   AppointmentStatus
	}{
		{"technician accepts", AppointmentStatusScheduled, ActorTechnician, ActionAccept, AppointmentStatusAccepted},
		{"technician rejects", AppointmentStatusScheduled, ActorTechnician, ActionReject, AppointmentStatusRejected},
		{"customer cancels scheduled", AppointmentStatusScheduled, ActorCustomer, ActionCancel, AppointmentStatusCancelled},
		{"customer cancels accepted", AppointmentStatusAccepted, ActorCustomer, ActionCancel, AppointmentStatusCancelled},
		{"customer cancels during repair", AppointmentStatusRepairing, ActorCustomer, ActionCancel, AppointmentStatusCancelled},
		{"customer cancels during testing", AppointmentStatusTesting, ActorCustomer, ActionCancel, AppointmentStatusCancelled},
		{"arrive keeps accepted", AppointmentStatusAccepted, ActorTechnician, ActionArrive, AppointmentStatusAccepted},
		{"repair starts", AppointmentStatusAccepted, ActorTechnician, ActionStartRepair, AppointmentStatusRepairing},
		{"testing starts", AppointmentStatusRepairing, ActorTechnician, ActionStartTesting, AppointmentStatusTesting},
		{"repair completes", AppointmentStatusTesting, ActorTechnician, ActionComplete, AppointmentStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextStatus(tc.from, tc.actor, tc.action)
			if err != nil {
				t.Fatalf("NextStatus(%s, %s, %s): %v", tc.from, tc.actor, tc.action, err)
			}
			if got != tc.want {
				t.Errorf("NextStatus(%s, %s, %s) = %s, want %s", tc.from, tc.actor, tc.action, got, tc.want)
			}
		})
	}
}

func TestNextStatusTerminalRejectsEverything(t *testing.T) {
	terminals := []AppointmentStatus{
		AppointmentStatusCompleted,
		AppointmentStatusRejected,
		AppointmentStatusCancelled,
		AppointmentStatus("Canceled"),
	}
	actions := []struct {
		actor  Actor
		action Action
	}{
		{ActorTechnician, ActionAccept},
		{ActorTechnician, ActionReject},
		{ActorCustomer, ActionCancel},
		{ActorTechnician, ActionArrive},
		{ActorTechnician, ActionStartRepair},
		{ActorTechnician, ActionStartTesting},
		{ActorTechnician, ActionComplete},
	}

	for _, from := range terminals {
		for _, a := range actions {
			if _, err := NextStatus(from, a.actor, a.action); !errors.Is(err, ErrTerminalState) {
				t.Errorf("NextStatus(%s, %s, %s) = %v, want ErrTerminalState", from, a.actor, a.action, err)
			}
		}
	}
}

func TestNextStatusInvalidTransitions(t *testing.T) {
	cases := []struct {
		from   AppointmentStatus
		actor  Actor
		action Action
	}{
		// Нельзя перепрыгивать этапы
		{AppointmentStatusScheduled, ActorTechnician, ActionStartRepair},
		{AppointmentStatusScheduled, ActorTechnician, ActionComplete},
		{AppointmentStatusAccepted, ActorTechnician, ActionComplete},
		{AppointmentStatusRepairing, ActorTechnician, ActionComplete},
		// Действия чужого актора
		{AppointmentStatusScheduled, ActorCustomer, ActionAccept},
		{AppointmentStatusAccepted, ActorCustomer, ActionStartRepair},
		{AppointmentStatusScheduled, ActorTechnician, ActionCancel},
		// Отклонить можно только из Scheduled
		{AppointmentStatusAccepted, ActorTechnician, ActionReject},
		{AppointmentStatusRepairing, ActorTechnician, ActionReject},
	}

	for _, tc := range cases {
		if _, err := NextStatus(tc.from, tc.actor, tc.action); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("NextStatus(%s, %s, %s) = %v, want ErrInvalidTransition", tc.from, tc.actor, tc.action, err)
		}
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("Canceled")
	if err != nil {
		t.Fatalf("ParseAppointmentStatus legacy spelling: %v", err)
	}
	if status != AppointmentStatusCancelled {
		t.Errorf("legacy spelling normalized to %s, want %s", status, AppointmentStatusCancelled)
	}

	if _, err := ParseAppointmentStatus("Unknown"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("ParseAppointmentStatus(Unknown) = %v, want ErrUnknownStatus", err)
	}
}

func TestReasonRequired(t *testing.T) {
	if !ActionReject.ReasonRequired() {
		t.Error("reject must require a reason")
	}
	if !ActionCancel.ReasonRequired() {
		t.Error("cancel must require a reason")
	}
	if ActionAccept.ReasonRequired() {
		t.Error("accept must not require a reason")
	}
}

func TestStatusRecordViewsDerivedFromGlobal(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusAccepted,
		AppointmentStatusRejected,
		AppointmentStatusCancelled,
		AppointmentStatusRepairing,
		AppointmentStatusTesting,
		AppointmentStatusCompleted,
	} {
		record := NewStatusRecord(status, false)
		if record.Global != status {
			t.Errorf("record.Global = %s, want %s", record.Global, status)
		}
		if record.UserView != CustomerMessageFor(status, false) {
			t.Errorf("UserView for %s diverged from formatter", status)
		}
		if record.TechnicianView != TechnicianMessageFor(status, false) {
			t.Errorf("TechnicianView for %s diverged from formatter", status)
		}
	}
}

func TestStatusRecordArrivedVariant(t *testing.T) {
	record := NewStatusRecord(AppointmentStatusAccepted, true)
	if record.Global != AppointmentStatusAccepted {
		t.Fatalf("arrived must not change global status, got %s", record.Global)
	}
	if record.UserView != "The technician has arrived" {
		t.Errorf("UserView = %q", record.UserView)
	}
	if record.TechnicianView != "You arrived at the customer's location" {
		t.Errorf("TechnicianView = %q", record.TechnicianView)
	}

	// Вне Accepted флаг arrived игнорируется
	repairing := NewStatusRecord(AppointmentStatusRepairing, true)
	if repairing.UserView != CustomerMessageFor(AppointmentStatusRepairing, false) {
		t.Errorf("arrived leaked into %s view", AppointmentStatusRepairing)
	}
}

func TestIsActive(t *testing.T) {
	active := []AppointmentStatus{
		AppointmentStatusScheduled, AppointmentStatusAccepted,
		AppointmentStatusRepairing, AppointmentStatusTesting,
	}
	for _, status := range active {
		if !status.IsActive() {
			t.Errorf("%s must be active", status)
		}
	}

	inactive := []AppointmentStatus{
		AppointmentStatusCompleted, AppointmentStatusRejected, AppointmentStatusCancelled,
	}
	for _, status := range inactive {
		if status.IsActive() {
			t.Errorf("%s must not be active", status)
		}
	}
}
