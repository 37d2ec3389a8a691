// Package store provides the similarity-searchable candidate document store.
// A store owns persisted documents exclusively: acquisition hands profiles
// over by value and the store computes the embedding exactly once, on write.
//
// Backends: Postgres (DatabaseURL set), a SQLite file under DataDir, or
// process-lifetime memory. All three share the same ranking path, so the
// similarity metric is consistent within any collection.
package store

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/talent-scout/internal/embedding"
	"github.com/jonathan/talent-scout/internal/types"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "candidate_profiles"

// docIDPrefix derives the stable document id from a profile identifier.
const docIDPrefix = "profile_"

// Config configures a document store.
type Config struct {
	// Collection names the logical profile set. Reopening an existing
	// collection reuses it; it is never cleared.
	Collection string
	// DataDir, when set, persists the collection in a SQLite file under
	// this directory. Ignored when DatabaseURL is set.
	DataDir string
	// DatabaseURL, when set, persists the collection in Postgres.
	DatabaseURL string
	// Embedder is the embedding provider shared by the write and query
	// paths. Required.
	Embedder embedding.Provider
}

// document is the stored unit: canonical text, its vector, and the display
// metadata projection.
type document struct {
	ID        string
	Text      string
	Embedding []float32
	Metadata  types.DocumentMetadata
}

// backend is the storage surface behind a Store.
type backend interface {
	put(ctx context.Context, doc document) error
	// all returns every document in the collection. Ranking is done in
	// process; collections are small (hundreds, not millions).
	all(ctx context.Context) ([]document, error)
	close() error
}

// Store is a similarity-searchable collection of candidate documents.
type Store struct {
	collection string
	embedder   embedding.Provider
	backend    backend
}

// Open opens (or creates) a collection. Opening the same collection twice
// reuses the existing data.
func Open(ctx context.Context, config Config) (*Store, error) {
	if config.Embedder == nil {
		return nil, fmt.Errorf("embedding provider is required")
	}
	collection := config.Collection
	if collection == "" {
		collection = DefaultCollection
	}

	var (
		b   backend
		err error
	)
	switch {
	case config.DatabaseURL != "":
		b, err = openPostgres(ctx, config.DatabaseURL, collection)
	case config.DataDir != "":
		b, err = openSQLite(config.DataDir, collection)
	default:
		b = openMemory(collection)
	}
	if err != nil {
		return nil, err
	}

	return &Store{
		collection: collection,
		embedder:   config.Embedder,
		backend:    b,
	}, nil
}

// Collection returns the collection name.
func (s *Store) Collection() string {
	return s.collection
}

// Close releases backend resources.
func (s *Store) Close() error {
	return s.backend.close()
}

// DocumentID derives the stable document id for a profile identifier.
func DocumentID(identifier string) string {
	return docIDPrefix + identifier
}

// Upsert writes a profile's document, embedding, and metadata. Re-upserting
// the same identifier overwrites the prior record. Returns the document id,
// or "" when the profile is invalid or the write failed; failures are
// logged, never propagated, so a bad record cannot abort a batch.
func (s *Store) Upsert(ctx context.Context, profile *types.CandidateProfile) string {
	if profile == nil || strings.TrimSpace(profile.Identifier) == "" {
		log.Printf("[STORE] Cannot add profile without identifier to %s", s.collection)
		return ""
	}

	text := profile.CanonicalText
	if text == "" {
		text = profile.BuildCanonicalText()
	}

	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		log.Printf("[STORE] Failed to embed profile %s: %v", profile.Identifier, err)
		return ""
	}

	doc := document{
		ID:        DocumentID(profile.Identifier),
		Text:      text,
		Embedding: vector,
		Metadata: types.DocumentMetadata{
			Identifier: profile.Identifier,
			Name:       profile.DisplayName,
			Title:      profile.Headline,
			Location:   profile.Location,
			URL:        profile.SourceURL,
		},
	}

	if err := s.backend.put(ctx, doc); err != nil {
		log.Printf("[STORE] Failed to store profile %s: %v", profile.Identifier, err)
		return ""
	}

	return doc.ID
}

// Query embeds the query text and returns at most k documents ordered
// best-to-worst match. An empty collection or backend failure yields an
// empty slice, never an error: callers treat empty as "nothing found".
func (s *Store) Query(ctx context.Context, queryText string, k int) []types.QueryResult {
	if k <= 0 {
		return nil
	}

	queryVector, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		log.Printf("[STORE] Failed to embed query: %v", err)
		return nil
	}

	docs, err := s.backend.all(ctx)
	if err != nil {
		log.Printf("[STORE] Query failed on %s: %v", s.collection, err)
		return nil
	}

	return rank(docs, queryVector, k)
}
