package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/talent-scout/internal/analyzer"
	"github.com/jonathan/talent-scout/internal/embedding"
	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/store"
)

// storeFlags are the document-store settings shared by every subcommand
// that reads or writes profiles.
type storeFlags struct {
	collection  string
	dataDir     string
	databaseURL string
}

func (f *storeFlags) resolve() {
	if f.databaseURL == "" {
		f.databaseURL = os.Getenv("DATABASE_URL")
	}
	if f.dataDir == "" && f.databaseURL == "" {
		f.dataDir = os.Getenv("DATA_DIR")
	}
}

// resolveAPIKey returns the Gemini API key from the flag or environment.
func resolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
}

// openStore builds the embedding provider and opens the document store.
// The caller owns both returned closers.
func openStore(ctx context.Context, apiKey string, flags storeFlags) (*store.Store, *embedding.GeminiProvider, error) {
	provider, err := embedding.NewGeminiProvider(ctx, apiKey, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	documents, err := store.Open(ctx, store.Config{
		Collection:  flags.collection,
		DataDir:     flags.dataDir,
		DatabaseURL: flags.databaseURL,
		Embedder:    provider,
	})
	if err != nil {
		provider.Close()
		return nil, nil, fmt.Errorf("failed to open document store: %w", err)
	}

	return documents, provider, nil
}

// newAnalyzer wires a retrieval-augmented analyzer over the given store.
func newAnalyzer(ctx context.Context, apiKey string, documents *store.Store) (*analyzer.Analyzer, llm.Client, error) {
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return analyzer.New(documents, client), client, nil
}
