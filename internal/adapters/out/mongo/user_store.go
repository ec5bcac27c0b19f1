package mongo

import (
	"context"
	"errors"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewUserStore(db *mongo.Database, logger out.LoggerPort) *UserStore {
	return &UserStore{
		collection: db.Collection(collectionUsers),
		logger:     logger.WithModule("UserStore"),
	}
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) SetSelectedLocation(ctx context.Context, id string, location domain.GeoPoint) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"selectedLocation": location}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
