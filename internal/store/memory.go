package store

import (
	"context"
	"sync"
)

// memoryRegistry keeps in-memory collections alive for the process
// lifetime, so reopening a collection reuses it rather than clearing it.
var (
	memoryRegistry   = make(map[string]*memoryBackend)
	memoryRegistryMu sync.Mutex
)

// memoryBackend holds a collection's documents in insertion order.
// Writes are single-writer by contract; the map guard is for the registry,
// not for concurrent queries.
type memoryBackend struct {
	mu   sync.Mutex
	docs map[string]document
	ids  []string
}

func openMemory(collection string) *memoryBackend {
	memoryRegistryMu.Lock()
	defer memoryRegistryMu.Unlock()

	if b, ok := memoryRegistry[collection]; ok {
		return b
	}
	b := &memoryBackend{docs: make(map[string]document)}
	memoryRegistry[collection] = b
	return b
}

func (b *memoryBackend) put(_ context.Context, doc document) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.docs[doc.ID]; !exists {
		b.ids = append(b.ids, doc.ID)
	}
	b.docs[doc.ID] = doc
	return nil
}

func (b *memoryBackend) all(_ context.Context) ([]document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	docs := make([]document, 0, len(b.ids))
	for _, id := range b.ids {
		docs = append(docs, b.docs[id])
	}
	return docs, nil
}

func (b *memoryBackend) close() error {
	// Data survives close: lifetime is the process, not the handle.
	return nil
}
