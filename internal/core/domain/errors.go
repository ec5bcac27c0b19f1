package domain

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrUnknownStatus       = errors.New("unknown appointment status")
	ErrTerminalState       = errors.New("appointment is already in a terminal state")
	ErrInvalidTransition   = errors.New("transition is not allowed for this actor and state")
	ErrStatusConflict      = errors.New("appointment status changed concurrently")
	ErrReasonRequired      = errors.New("a reason is required for this action")
	ErrActorMismatch       = errors.New("actor does not belong to this appointment")
	ErrArriveNotApplicable = errors.New("arrival confirmation is only for home-service appointments")
	ErrOngoingRepair       = errors.New("technician has an ongoing repair")
	ErrPendingAppointments = errors.New("technician has pending or accepted appointments")
	ErrInvalidIssueText    = errors.New("issue description is invalid")
	ErrUnknownCategory     = errors.New("unknown appliance category")
	ErrUnknownIssue        = errors.New("unknown issue for this category")
)
