package domain

import "time"

type ServiceType string

const (
	ServiceTypeHomeService ServiceType = "home-service"
	ServiceTypeWalkIn      ServiceType = "walk-in"
)

// DiagnosisSnapshot - срез диагноза, зафиксированный в заявке при бронировании
type DiagnosisSnapshot struct {
	Category      string         `json:"category" bson:"category"`
	Brand         string         `json:"brand" bson:"brand"`
	Model         string         `json:"model,omitempty" bson:"model,omitempty"`
	Issue         string         `json:"issue" bson:"issue"`
	Diagnosis     string         `json:"diagnosis" bson:"diagnosis"`
	EstimatedCost int            `json:"estimatedCost" bson:"estimatedCost"`
	Source        EstimateSource `json:"source" bson:"source"`
}

type Appointment struct {
	ID           string       `json:"id" bson:"_id"`
	UserID       string       `json:"userId" bson:"userId"`
	TechnicianID string       `json:"technicianId" bson:"technicianId"`
	ServiceType  ServiceType  `json:"serviceType" bson:"serviceType"`
	Status       StatusRecord `json:"status" bson:"status"`

	Diagnosis DiagnosisSnapshot `json:"diagnosis" bson:"diagnosis"`
	Location  *GeoPoint         `json:"location,omitempty" bson:"location,omitempty"`

	RejectionReason    string `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`

	ScheduledDate time.Time `json:"scheduledDate" bson:"scheduledDate"`
	// Техник заполняет при старте ремонта
	EstimatedCompletionDate *time.Time `json:"estimatedCompletionDate,omitempty" bson:"estimatedCompletionDate,omitempty"`

	// Отметки времени проставляются по факту перехода, не все обязаны присутствовать
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
	AcceptedAt       *time.Time `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty"`
	ArrivedAt        *time.Time `json:"arrivedAt,omitempty" bson:"arrivedAt,omitempty"`
	RepairStartedAt  *time.Time `json:"repairStartedAt,omitempty" bson:"repairStartedAt,omitempty"`
	TestingStartedAt *time.Time `json:"testingStartedAt,omitempty" bson:"testingStartedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	RejectedAt       *time.Time `json:"rejectedAt,omitempty" bson:"rejectedAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}

func (a *Appointment) Arrived() bool {
	return a.ArrivedAt != nil
}

// CounterpartyID - кому адресовано уведомление о действии актора
func (a *Appointment) CounterpartyID(actor Actor) string {
	if actor == ActorCustomer {
		return a.TechnicianID
	}
	return a.UserID
}
