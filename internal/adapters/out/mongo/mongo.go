package mongo

import (
	"context"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionAppointments  = "appointments"
	collectionTechnicians   = "technicians"
	collectionUsers         = "users"
	collectionDiagnoses     = "diagnoses"
	collectionNotifications = "notifications"
)

// NewDatabase открывает подключение и проверяет его пингом
func NewDatabase(ctx context.Context, cfg *config.Config) (*mongo.Database, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}

	return client.Database(cfg.Mongo.Database), closeFn, nil
}
