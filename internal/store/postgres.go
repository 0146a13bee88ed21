package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// PostgresStore persists skill records in PostgreSQL. One row per record;
// saving a document replaces its previous rows in a single transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the skill_records table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS skill_records (
			id UUID PRIMARY KEY,
			document_id TEXT NOT NULL,
			canonical_name TEXT NOT NULL,
			category TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			context_snippet TEXT,
			source_strategies TEXT NOT NULL,
			extractor_version TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (document_id, canonical_name, category)
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Save implements Store. Previous records for the document are removed so a
// re-extraction with fewer skills does not leave stale rows behind.
func (s *PostgresStore) Save(ctx context.Context, documentID, extractorVersion string, records []types.SkillRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM skill_records WHERE document_id = $1`, documentID,
	); err != nil {
		return fmt.Errorf("failed to clear previous records: %w", err)
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(
			`INSERT INTO skill_records
			 (id, document_id, canonical_name, category, confidence, context_snippet, source_strategies, extractor_version)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), documentID, r.CanonicalName, r.Category, r.Confidence,
			r.ContextSnippet, strings.Join(r.SourceStrategies, ","), extractorVersion,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Version implements Store. All rows of a document share one version, so any
// row answers the question.
func (s *PostgresStore) Version(ctx context.Context, documentID string) (string, error) {
	var v string
	err := s.pool.QueryRow(ctx,
		`SELECT extractor_version FROM skill_records WHERE document_id = $1 LIMIT 1`,
		documentID,
	).Scan(&v)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to query version: %w", err)
	}
	return v, nil
}
