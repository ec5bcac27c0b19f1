package domain

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusAccepted  AppointmentStatus = "Accepted"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusRepairing AppointmentStatus = "Repairing"
	AppointmentStatusTesting   AppointmentStatus = "Testing"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
)

// Устаревшее написание, встречается в старых документах
const appointmentStatusCanceledLegacy = "Canceled"

type Actor string

const (
	ActorCustomer   Actor = "customer"
	ActorTechnician Actor = "technician"
)

type Action string

const (
	ActionBook         Action = "book"
	ActionAccept       Action = "accept"
	ActionReject       Action = "reject"
	ActionCancel       Action = "cancel"
	ActionArrive       Action = "arrive"
	ActionStartRepair  Action = "start_repair"
	ActionStartTesting Action = "start_testing"
	ActionComplete     Action = "complete"

	// Не является переходом, используется только в событиях напоминаний
	ActionReminder Action = "reminder"
)

// ParseAppointmentStatus нормализует статус из хранилища.
// Оба написания "Cancelled" и "Canceled" считаются одним терминальным статусом.
func ParseAppointmentStatus(raw string) (AppointmentStatus, error) {
	switch raw {
	case string(AppointmentStatusScheduled),
		string(AppointmentStatusAccepted),
		string(AppointmentStatusRejected),
		string(AppointmentStatusCancelled),
		string(AppointmentStatusRepairing),
		string(AppointmentStatusTesting),
		string(AppointmentStatusCompleted):
		return AppointmentStatus(raw), nil
	case appointmentStatusCanceledLegacy:
		return AppointmentStatusCancelled, nil
	}
	return "", ErrUnknownStatus
}

func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case AppointmentStatusCompleted, AppointmentStatusRejected, AppointmentStatusCancelled:
		return true
	}
	return s == appointmentStatusCanceledLegacy
}

// IsActive - статусы, которые блокируют выключение доступности техника
func (s AppointmentStatus) IsActive() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusAccepted,
		AppointmentStatusRepairing, AppointmentStatusTesting:
		return true
	}
	return false
}

// IsInProgress - ремонт физически идет, новый начинать нельзя
func (s AppointmentStatus) IsInProgress() bool {
	return s == AppointmentStatusRepairing || s == AppointmentStatusTesting
}

type transitionKey struct {
	From   AppointmentStatus
	Actor  Actor
	Action Action
}

// Таблица переходов жизненного цикла заявки.
// arrive - это под-шаг внутри Accepted (только для home-service),
// глобальный статус при этом не меняется.
var transitions = map[transitionKey]AppointmentStatus{
	{AppointmentStatusScheduled, ActorTechnician, ActionAccept}:     AppointmentStatusAccepted,
	{AppointmentStatusScheduled, ActorTechnician, ActionReject}:     AppointmentStatusRejected,
	{AppointmentStatusScheduled, ActorCustomer, ActionCancel}:       AppointmentStatusCancelled,
	{AppointmentStatusAccepted, ActorCustomer, ActionCancel}:        AppointmentStatusCancelled,
	{AppointmentStatusRepairing, ActorCustomer, ActionCancel}:       AppointmentStatusCancelled,
	{AppointmentStatusTesting, ActorCustomer, ActionCancel}:         AppointmentStatusCancelled,
	{AppointmentStatusAccepted, ActorTechnician, ActionArrive}:      AppointmentStatusAccepted,
	{AppointmentStatusAccepted, ActorTechnician, ActionStartRepair}: AppointmentStatusRepairing,
	{AppointmentStatusRepairing, ActorTechnician, ActionStartTesting}: AppointmentStatusTesting,
	{AppointmentStatusTesting, ActorTechnician, ActionComplete}:       AppointmentStatusCompleted,
}

// NextStatus - единственная точка валидации переходов
func NextStatus(from AppointmentStatus, actor Actor, action Action) (AppointmentStatus, error) {
	if from.IsTerminal() {
		return "", ErrTerminalState
	}

	to, ok := transitions[transitionKey{From: from, Actor: actor, Action: action}]
	if !ok {
		return "", ErrInvalidTransition
	}

	return to, nil
}

// ReasonRequired - отклонение и отмена всегда требуют причину
func (a Action) ReasonRequired() bool {
	return a == ActionReject || a == ActionCancel
}
