package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/talent-scout/internal/types"
)

// postgresBackend persists a collection in Postgres. Embeddings use the
// same float32 blob encoding as the SQLite backend, stored as BYTEA.
type postgresBackend struct {
	pool       *pgxpool.Pool
	collection string
}

func openPostgres(ctx context.Context, databaseURL, collection string) (*postgresBackend, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS candidate_documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			document   TEXT NOT NULL,
			embedding  BYTEA,
			metadata   JSONB,
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create candidate_documents table: %w", err)
	}

	return &postgresBackend{pool: pool, collection: collection}, nil
}

func (b *postgresBackend) put(ctx context.Context, doc document) error {
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = b.pool.Exec(ctx, `
		INSERT INTO candidate_documents (collection, id, document, embedding, metadata)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (collection, id) DO UPDATE SET
			document = EXCLUDED.document,
			embedding = EXCLUDED.embedding,
			metadata = EXCLUDED.metadata,
			updated_at = NOW()`,
		b.collection, doc.ID, doc.Text, float32SliceToBytes(doc.Embedding), metadataJSON)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (b *postgresBackend) all(ctx context.Context) ([]document, error) {
	rows, err := b.pool.Query(ctx, `
		SELECT id, document, embedding, metadata
		FROM candidate_documents WHERE collection = $1`, b.collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []document
	for rows.Next() {
		var (
			doc           document
			embeddingBlob []byte
			metadataJSON  []byte
		)
		if err := rows.Scan(&doc.ID, &doc.Text, &embeddingBlob, &metadataJSON); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Embedding = bytesToFloat32Slice(embeddingBlob)
		if len(metadataJSON) > 0 {
			var meta types.DocumentMetadata
			if err := json.Unmarshal(metadataJSON, &meta); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
			doc.Metadata = meta
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}

func (b *postgresBackend) close() error {
	b.pool.Close()
	return nil
}
