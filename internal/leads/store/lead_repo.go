package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/sales-lead-scoring-service/internal/leads/model"
)

// LeadRepository handles document store reads for the customer data
// collection. The collection is the pipeline's input collaborator: the only
// contract used is "read all records".
type LeadRepository struct {
	Collection *mongo.Collection
}

// NewLeadRepository creates a new repository instance.
func NewLeadRepository(db *mongo.Database, collectionName string) *LeadRepository {
	return &LeadRepository{
		Collection: db.Collection(collectionName),
	}
}

// GetAllLeads reads every customer record in insertion order. The internal
// document id is dropped so downstream projections see only customer fields.
func (repo *LeadRepository) GetAllLeads(ctx context.Context) ([]model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.Record
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, model.Record(doc))
	}
	return records, cursor.Err()
}
