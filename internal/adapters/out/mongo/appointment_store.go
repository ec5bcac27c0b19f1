package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentStore struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewAppointmentStore(db *mongo.Database, logger out.LoggerPort) *AppointmentStore {
	return &AppointmentStore{
		collection: db.Collection(collectionAppointments),
		logger:     logger.WithModule("AppointmentStore"),
	}
}

func (s *AppointmentStore) Insert(ctx context.Context, appointment domain.Appointment) error {
	_, err := s.collection.InsertOne(ctx, appointment)
	return err
}

func (s *AppointmentStore) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentStore) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return s.list(ctx, bson.M{"userId": userID})
}

func (s *AppointmentStore) ListByTechnician(ctx context.Context, technicianID string) ([]domain.Appointment, error) {
	return s.list(ctx, bson.M{"technicianId": technicianID})
}

func (s *AppointmentStore) list(ctx context.Context, filter bson.M) ([]domain.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []domain.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatusIf - условная запись: обновление применяется одним
// FindOneAndUpdate с фильтром по текущему status.global, так что
// гонка двух клиентов оставляет ровно одного победителя
func (s *AppointmentStore) UpdateStatusIf(ctx context.Context, id string, expect []domain.AppointmentStatus, update out.AppointmentUpdate) (*domain.Appointment, error) {
	expected := make([]string, 0, len(expect)+1)
	for _, status := range expect {
		expected = append(expected, string(status))
		// Старое написание терминального статуса в хранилище
		if status == domain.AppointmentStatusCancelled {
			expected = append(expected, "Canceled")
		}
	}

	filter := bson.M{
		"_id":           id,
		"status.global": bson.M{"$in": expected},
	}

	set := bson.M{}
	for field, value := range update {
		set[field] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Appointment
	err := s.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Либо документа нет, либо статус уже ушел - различаем отдельным чтением
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		s.logger.Warn("appointment.update.status_conflict", out.LogFields{
			"appointmentId": id,
			"expected":      expected,
		})
		return nil, domain.ErrStatusConflict
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *AppointmentStore) CountByTechnicianAndStatus(ctx context.Context, technicianID string, statuses []domain.AppointmentStatus) (int64, error) {
	expected := make([]string, 0, len(statuses)+1)
	for _, status := range statuses {
		expected = append(expected, string(status))
		if status == domain.AppointmentStatusCancelled {
			expected = append(expected, "Canceled")
		}
	}

	return s.collection.CountDocuments(ctx, bson.M{
		"technicianId":  technicianID,
		"status.global": bson.M{"$in": expected},
	})
}

func (s *AppointmentStore) ListAcceptedForDate(ctx context.Context, day time.Time) ([]domain.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	return s.list(ctx, bson.M{
		"status.global": string(domain.AppointmentStatusAccepted),
		"scheduledDate": bson.M{"$gte": start, "$lt": end},
	})
}
