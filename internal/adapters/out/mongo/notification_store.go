package mongo

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationStore struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewNotificationStore(db *mongo.Database, logger out.LoggerPort) *NotificationStore {
	return &NotificationStore{
		collection: db.Collection(collectionNotifications),
		logger:     logger.WithModule("NotificationStore"),
	}
}

func (s *NotificationStore) Insert(ctx context.Context, notification domain.Notification) error {
	_, err := s.collection.InsertOne(ctx, notification)
	return err
}

// InsertIfAbsent - атомарный upsert по детерминированному _id:
// $setOnInsert не трогает существующий документ, повторная вставка
// прозрачно становится no-op
func (s *NotificationStore) InsertIfAbsent(ctx context.Context, notification domain.Notification) (bool, error) {
	opts := options.Update().SetUpsert(true)
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": notification.ID},
		bson.M{"$setOnInsert": notification},
		opts,
	)
	if err != nil {
		// Параллельный upsert с тем же _id может вернуть duplicate key -
		// для вызывающего это тот же "уже существует"
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}

	return result.UpsertedCount > 0, nil
}

func (s *NotificationStore) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []domain.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
