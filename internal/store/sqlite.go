package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jonathan/talent-scout/internal/types"
)

// sqliteBackend persists a collection in a SQLite file under the data
// directory. Embeddings are stored as little-endian float32 blobs.
type sqliteBackend struct {
	db         *sql.DB
	collection string
}

func openSQLite(dataDir, collection string) (*sqliteBackend, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "profiles.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			document   TEXT NOT NULL,
			embedding  BLOB,
			metadata   TEXT,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (collection, id)
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating documents table: %w", err)
	}

	return &sqliteBackend{db: db, collection: collection}, nil
}

func (b *sqliteBackend) put(ctx context.Context, doc document) error {
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = b.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, document, embedding, metadata)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			document = excluded.document,
			embedding = excluded.embedding,
			metadata = excluded.metadata,
			updated_at = CURRENT_TIMESTAMP`,
		b.collection, doc.ID, doc.Text, float32SliceToBytes(doc.Embedding), string(metadataJSON))
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

func (b *sqliteBackend) all(ctx context.Context) ([]document, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, document, embedding, metadata
		FROM documents WHERE collection = ?`, b.collection)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []document
	for rows.Next() {
		var (
			doc           document
			embeddingBlob []byte
			metadataJSON  sql.NullString
		)
		if err := rows.Scan(&doc.ID, &doc.Text, &embeddingBlob, &metadataJSON); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.Embedding = bytesToFloat32Slice(embeddingBlob)
		if metadataJSON.Valid && metadataJSON.String != "" {
			var meta types.DocumentMetadata
			if err := json.Unmarshal([]byte(metadataJSON.String), &meta); err != nil {
				return nil, fmt.Errorf("unmarshalling metadata: %w", err)
			}
			doc.Metadata = meta
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func (b *sqliteBackend) close() error {
	return b.db.Close()
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
