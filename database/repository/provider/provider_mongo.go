package providerRepo

import (
	"context"
	"fmt"
	"time"

	"carebridge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new provider document.
func (r *mongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}
	if provider.Status == "" {
		provider.Status = models.ProviderStatusPending
	}
	provider.CreatedAt = time.Now()
	provider.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

// GetByID retrieves a provider by its unique ID.
func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetAll retrieves all providers.
func (r *mongoProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// ListApproved retrieves providers eligible for coverage determination.
func (r *mongoProviderRepo) ListApproved(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.ProviderStatusApproved})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// Update modifies an existing provider document.
func (r *mongoProviderRepo) Update(ctx context.Context, provider *models.Provider) error {
	provider.UpdatedAt = time.Now()

	filter := bson.M{"id": provider.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": provider})
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", provider.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", provider.ID)
	}
	return nil
}

// Delete removes a provider document by its ID.
func (r *mongoProviderRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}

// SetCoordinate stores a resolved home coordinate for a provider.
func (r *mongoProviderRepo) SetCoordinate(ctx context.Context, id string, coord models.Coordinate) error {
	update := bson.M{"$set": bson.M{"coordinate": coord, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set coordinate for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}
