package domain

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeNewAppointment       NotificationType = "new-appointment"
	NotificationTypeStatusChange         NotificationType = "status-change"
	NotificationTypeReminder             NotificationType = "reminder"
	NotificationTypeWelcome              NotificationType = "welcome"
	NotificationTypeRegistrationReminder NotificationType = "registration-reminder"
	NotificationTypeRatingReceived       NotificationType = "rating-received"
)

// IsOneTime - уведомления, которые пользователь должен получить ровно один раз
func (t NotificationType) IsOneTime() bool {
	return t == NotificationTypeWelcome || t == NotificationTypeRegistrationReminder
}

type Notification struct {
	ID            string           `json:"id" bson:"_id"`
	UserID        string           `json:"userId" bson:"userId"`
	Type          NotificationType `json:"type" bson:"type"`
	Title         string           `json:"title" bson:"title"`
	Message       string           `json:"message" bson:"message"`
	AppointmentID string           `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Read          bool             `json:"read" bson:"read"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
}

// OneTimeNotificationID - детерминированный id, чтобы вставка
// по ключу (userId, type) была insert-if-absent
func OneTimeNotificationID(userID string, t NotificationType) string {
	return fmt.Sprintf("%s:%s", userID, t)
}

// AppointmentEvent - сообщение, публикуемое при каждом переходе жизненного цикла
type AppointmentEvent struct {
	AppointmentID string            `json:"appointmentId"`
	Action        Action            `json:"action"`
	Actor         Actor             `json:"actor"`
	Status        AppointmentStatus `json:"status"`
	RecipientID   string            `json:"recipientId"`
	Message       string            `json:"message"`
	Reason        string            `json:"reason,omitempty"`
	OccurredAt    time.Time         `json:"occurredAt"`
}
