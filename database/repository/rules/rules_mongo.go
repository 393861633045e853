package rulesRepo

import (
	"context"
	"fmt"
	"time"

	"carebridge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new surge rule and returns its ID.
func (r *mongoRuleRepo) Create(ctx context.Context, rule models.SurgeRule) (string, error) {
	if err := rule.Validate(); err != nil {
		return "", err
	}
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		return "", fmt.Errorf("failed to create surge rule: %w", err)
	}
	return rule.ID, nil
}

// GetByID returns a surge rule by its ID.
func (r *mongoRuleRepo) GetByID(ctx context.Context, id string) (*models.SurgeRule, error) {
	var rule models.SurgeRule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll returns every configured surge rule, enabled or not.
func (r *mongoRuleRepo) GetAll(ctx context.Context) ([]models.SurgeRule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.SurgeRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ListEnabled returns the rules currently eligible for evaluation.
func (r *mongoRuleRepo) ListEnabled(ctx context.Context) ([]models.SurgeRule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"enabled": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.SurgeRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Update replaces an existing surge rule document.
func (r *mongoRuleRepo) Update(ctx context.Context, rule models.SurgeRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	rule.UpdatedAt = time.Now()

	filter := bson.M{"id": rule.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": rule})
	if err != nil {
		return fmt.Errorf("failed to update surge rule %s: %w", rule.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("surge rule %s not found", rule.ID)
	}
	return nil
}

// Delete removes a surge rule by ID.
func (r *mongoRuleRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete surge rule %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("surge rule %s not found", id)
	}
	return nil
}
