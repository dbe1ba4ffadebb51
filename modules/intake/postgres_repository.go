package intake

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
	"github.com/dmitrymomot/hrkit/pkg/pg"
)

// Migrations holds the schema for the Postgres repository. Apply at startup
// with pg.Migrate before constructing the repository.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// PostgresRepository stores candidate records as JSONB rows in the documents
// table.
type PostgresRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPostgresRepository creates a repository on the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		pool: pool,
		now:  time.Now,
	}
}

// Store inserts the record with a fresh UUID and creation timestamp.
func (r *PostgresRepository) Store(ctx context.Context, rec candidate.Record) (*StoredDocument, error) {
	doc := StoredDocument{
		ID:        uuid.NewString(),
		CreatedAt: r.now().UTC(),
		Record:    rec,
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	const q = `INSERT INTO documents (id, payload, created_at) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, q, doc.ID, body, doc.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &doc, nil
}

// GetByID fetches one stored document, returning ErrDocumentNotFound when the
// ID is unknown. A malformed ID cannot name a stored document, so it reports
// not found rather than a storage fault.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*StoredDocument, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrDocumentNotFound
	}

	const q = `SELECT id, payload, created_at FROM documents WHERE id = $1`

	var (
		doc  StoredDocument
		body []byte
	)
	if err := r.pool.QueryRow(ctx, q, id).Scan(&doc.ID, &body, &doc.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("select document: %w", err)
	}

	if err := json.Unmarshal(body, &doc.Record); err != nil {
		return nil, fmt.Errorf("decode stored record: %w", err)
	}
	return &doc, nil
}
