package unservedRepo

import (
	"context"

	"carebridge/database"
	"carebridge/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UnservedRequestRepository records coverage checks that could not be served.
type UnservedRequestRepository interface {
	Record(ctx context.Context, req models.UnservedRequest) error
	GetAll(ctx context.Context) ([]models.UnservedRequest, error)
}

type mongoUnservedRepo struct {
	coll *mongo.Collection
}

// NewMongoUnservedRepo returns an UnservedRequestRepository backed by MongoDB.
func NewMongoUnservedRepo() UnservedRequestRepository {
	db := database.MongoClient.Database("carebridge")
	return &mongoUnservedRepo{
		coll: db.Collection("unserved_requests"),
	}
}
