package mongo

import (
	"context"
	"errors"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TechnicianStore struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewTechnicianStore(db *mongo.Database, logger out.LoggerPort) *TechnicianStore {
	return &TechnicianStore{
		collection: db.Collection(collectionTechnicians),
		logger:     logger.WithModule("TechnicianStore"),
	}
}

func (s *TechnicianStore) GetByID(ctx context.Context, id string) (*domain.Technician, error) {
	var technician domain.Technician
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&technician)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &technician, nil
}

func (s *TechnicianStore) SetAvailability(ctx context.Context, id string, available bool) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"availability": available}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *TechnicianStore) SetPhotoURL(ctx context.Context, id string, url string) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"photoUrl": url}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
