package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/sales-lead-scoring-service/internal/leads/model"
)

// ScoredLeadRepository handles the output collection for scored leads. Each
// write uses a freshly generated identifier, so re-scoring always produces an
// independent output set; clearing the collection is a separate operation.
type ScoredLeadRepository struct {
	db             *mongo.Database
	collectionName string
}

// NewScoredLeadRepository creates a new repository instance.
func NewScoredLeadRepository(db *mongo.Database, collectionName string) *ScoredLeadRepository {
	return &ScoredLeadRepository{
		db:             db,
		collectionName: collectionName,
	}
}

// EnsureCollection creates the scored leads collection if it does not exist.
func (repo *ScoredLeadRepository) EnsureCollection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	names, err := repo.db.ListCollectionNames(ctx, bson.M{"name": repo.collectionName})
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return nil
	}
	return repo.db.CreateCollection(ctx, repo.collectionName)
}

// UpsertScoredLead writes one enriched record under the given identifier.
func (repo *ScoredLeadRepository) UpsertScoredLead(ctx context.Context, id string, record model.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := record.Clone()
	doc[model.FieldID] = id

	filter := bson.M{model.FieldID: id}
	opts := options.Replace().SetUpsert(true)

	_, err := repo.db.Collection(repo.collectionName).ReplaceOne(ctx, filter, bson.M(doc), opts)
	return err
}

// DeleteScoredLead removes one scored lead by its identifier.
func (repo *ScoredLeadRepository) DeleteScoredLead(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := repo.db.Collection(repo.collectionName).DeleteOne(ctx, bson.M{model.FieldID: id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ClearScoredLeads removes every scored lead and reports how many were removed.
func (repo *ScoredLeadRepository) ClearScoredLeads(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	result, err := repo.db.Collection(repo.collectionName).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// GetAllScoredLeads reads back the scored output set.
func (repo *ScoredLeadRepository) GetAllScoredLeads(ctx context.Context) ([]model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := repo.db.Collection(repo.collectionName).Find(ctx, bson.M{}, opts)
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
