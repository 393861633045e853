package clientsRepo

import (
	"context"
	"fmt"
	"time"

	"carebridge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new client address document.
func (r *mongoClientAddressRepo) Create(ctx context.Context, addr *models.ClientAddress) error {
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}
	addr.CreatedAt = time.Now()
	addr.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, addr); err != nil {
		return fmt.Errorf("failed to create client address: %w", err)
	}
	return nil
}

// GetByID returns a client address by its ID.
func (r *mongoClientAddressRepo) GetByID(ctx context.Context, id string) (*models.ClientAddress, error) {
	var addr models.ClientAddress
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// ListMissingCoordinates returns addresses whose coordinate is unset.
func (r *mongoClientAddressRepo) ListMissingCoordinates(ctx context.Context) ([]models.ClientAddress, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"coordinate": bson.M{"$exists": false}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addrs []models.ClientAddress
	if err := cursor.All(ctx, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// SetCoordinate persists a resolved coordinate for a single address. Existing
// coordinates are left untouched so a batch run never regresses good data.
func (r *mongoClientAddressRepo) SetCoordinate(ctx context.Context, id string, coord models.Coordinate) error {
	filter := bson.M{"id": id, "coordinate": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"coordinate": coord, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to set coordinate for address %s: %w", id, err)
	}
	return nil
}
