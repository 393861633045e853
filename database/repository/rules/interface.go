package rulesRepo

import (
	"context"

	"carebridge/database"
	"carebridge/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SurgeRuleRepository defines data access for surge rules. Rules are global
// configuration: written by administrators, read per price computation.
type SurgeRuleRepository interface {
	Create(ctx context.Context, rule models.SurgeRule) (string, error)
	GetByID(ctx context.Context, id string) (*models.SurgeRule, error)
	GetAll(ctx context.Context) ([]models.SurgeRule, error)
	// ListEnabled returns only the rules eligible for evaluation.
	ListEnabled(ctx context.Context) ([]models.SurgeRule, error)
	Update(ctx context.Context, rule models.SurgeRule) error
	Delete(ctx context.Context, id string) error
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo returns a SurgeRuleRepository backed by MongoDB.
func NewMongoRuleRepo() SurgeRuleRepository {
	db := database.MongoClient.Database("carebridge")
	return &mongoRuleRepo{
		coll: db.Collection("surge_rules"),
	}
}
