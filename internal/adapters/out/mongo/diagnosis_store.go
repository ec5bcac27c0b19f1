package mongo

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/mongo"
)

type DiagnosisStore struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewDiagnosisStore(db *mongo.Database, logger out.LoggerPort) *DiagnosisStore {
	return &DiagnosisStore{
		collection: db.Collection(collectionDiagnoses),
		logger:     logger.WithModule("DiagnosisStore"),
	}
}

func (s *DiagnosisStore) Insert(ctx context.Context, diagnosis domain.Diagnosis) error {
	_, err := s.collection.InsertOne(ctx, diagnosis)
	return err
}
