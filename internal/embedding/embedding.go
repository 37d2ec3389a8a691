// Package embedding provides the text-embedding capability consumed by the
// document store. The same provider instance must back both the write path
// and the query path of a collection, otherwise stored and query vectors
// are not comparable.
package embedding

import "context"

// Provider turns free text into a fixed-dimension vector. Implementations
// must be deterministic for identical input under a fixed model version and
// must tolerate empty text (embed it as a placeholder, do not fail).
type Provider interface {
	// Embed generates a vector representation of the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dimension returns the fixed vector length produced by this provider.
	Dimension() int
}
