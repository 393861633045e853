package clientsRepo

import (
	"context"

	"carebridge/database"
	"carebridge/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientAddressRepository defines data access for client service addresses.
type ClientAddressRepository interface {
	GetByID(ctx context.Context, id string) (*models.ClientAddress, error)
	Create(ctx context.Context, addr *models.ClientAddress) error
	// ListMissingCoordinates returns addresses that still need geocoding.
	ListMissingCoordinates(ctx context.Context) ([]models.ClientAddress, error)
	// SetCoordinate persists a resolved coordinate for a single address.
	SetCoordinate(ctx context.Context, id string, coord models.Coordinate) error
}

type mongoClientAddressRepo struct {
	coll *mongo.Collection
}

// NewMongoClientAddressRepo returns a ClientAddressRepository backed by MongoDB.
func NewMongoClientAddressRepo() ClientAddressRepository {
	db := database.MongoClient.Database("carebridge")
	return &mongoClientAddressRepo{
		coll: db.Collection("client_addresses"),
	}
}
