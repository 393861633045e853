package providerRepo

import (
	"context"

	"carebridge/database"
	"carebridge/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetAll(ctx context.Context) ([]models.Provider, error)
	// ListApproved returns providers that participate in coverage checks.
	ListApproved(ctx context.Context) ([]models.Provider, error)
	Create(ctx context.Context, provider *models.Provider) error
	Update(ctx context.Context, provider *models.Provider) error
	Delete(ctx context.Context, id string) error
	// SetCoordinate stores a resolved home coordinate for a provider.
	SetCoordinate(ctx context.Context, id string, coord models.Coordinate) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo returns a ProviderRepository backed by MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("carebridge")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
