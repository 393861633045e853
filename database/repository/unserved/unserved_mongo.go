package unservedRepo

import (
	"context"
	"fmt"
	"time"

	"carebridge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Record stores one unserved coverage request.
func (r *mongoUnservedRepo) Record(ctx context.Context, req models.UnservedRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	req.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to record unserved request: %w", err)
	}
	return nil
}

// GetAll returns every recorded unserved request.
func (r *mongoUnservedRepo) GetAll(ctx context.Context) ([]models.UnservedRequest, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reqs []models.UnservedRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}
