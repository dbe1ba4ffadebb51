package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
)

// documentsCollection is the collection validated records land in.
const documentsCollection = "documents"

// MongoRepository stores candidate records as MongoDB documents with the
// record fields inlined at the top level.
type MongoRepository struct {
	col *mongo.Collection
	now func() time.Time
}

// NewMongoRepository creates a repository on the documents collection of the
// given database.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		col: db.Collection(documentsCollection),
		now: time.Now,
	}
}

// Store inserts the record with a fresh UUID and creation timestamp.
func (r *MongoRepository) Store(ctx context.Context, rec candidate.Record) (*StoredDocument, error) {
	doc := StoredDocument{
		ID:        uuid.NewString(),
		CreatedAt: r.now().UTC(),
		Record:    rec,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &doc, nil
}

// GetByID fetches one stored document, returning ErrDocumentNotFound when the
// ID is unknown.
func (r *MongoRepository) GetByID(ctx context.Context, id string) (*StoredDocument, error) {
	var doc StoredDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return &doc, nil
}
