package intake

import (
	"context"
	"time"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
)

// StoredDocument is a validated candidate record at rest, wrapped with the
// identity and timestamp the store assigns. Record fields inline into the
// document body in BSON so stored documents stay queryable by field.
type StoredDocument struct {
	ID        string           `json:"id" bson:"_id"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	Record    candidate.Record `json:"record" bson:",inline"`
}

// Repository persists validated candidate records. Implementations assign the
// document ID and creation timestamp on Store and return ErrDocumentNotFound
// from GetByID when no document carries the requested ID.
type Repository interface {
	Store(ctx context.Context, rec candidate.Record) (*StoredDocument, error)
	GetByID(ctx context.Context, id string) (*StoredDocument, error)
}
