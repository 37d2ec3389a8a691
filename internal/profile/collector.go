package profile

import (
	"context"
	"log"

	"github.com/jonathan/talent-scout/internal/profileapi"
	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/types"
)

// Writer is the document-store write surface the collector needs.
// The empty string returned by Upsert marks a rejected write.
type Writer interface {
	Upsert(ctx context.Context, profile *types.CandidateProfile) string
}

// Collector composes discovery, fetching, and normalization into the
// profile-acquisition pipeline. All work is strictly sequential; callers
// impose any inter-call spacing they need.
type Collector struct {
	discoverer *search.Discoverer
	fetcher    profileapi.Fetcher
	writer     Writer
}

// NewCollector creates a Collector.
func NewCollector(discoverer *search.Discoverer, fetcher profileapi.Fetcher, writer Writer) *Collector {
	return &Collector{
		discoverer: discoverer,
		fetcher:    fetcher,
		writer:     writer,
	}
}

// Collect discovers up to count candidates for a role, fetches and
// normalizes each one, and writes it to the document store. A single
// identifier failing to fetch or normalize is skipped, never fatal to the
// batch; the returned slice holds only the successfully processed profiles
// and may be shorter than count.
func (c *Collector) Collect(ctx context.Context, role, location string, count int) []types.CandidateProfile {
	identifiers := c.discoverer.DiscoverIdentifiers(ctx, role, location, count)

	var profiles []types.CandidateProfile
	for _, identifier := range identifiers {
		raw, err := c.fetcher.FetchByIdentifier(ctx, identifier)
		if err != nil {
			log.Printf("[COLLECT] Skipping %s: %v", identifier, err)
			continue
		}

		profile, err := Normalize(raw)
		if err != nil {
			log.Printf("[COLLECT] Skipping %s: %v", identifier, err)
			continue
		}

		if c.writer != nil {
			if docID := c.writer.Upsert(ctx, profile); docID == "" {
				log.Printf("[COLLECT] Store rejected profile %s", identifier)
				continue
			}
		}

		profiles = append(profiles, *profile)
	}

	log.Printf("[COLLECT] Processed %d profiles for %q", len(profiles), role)
	return profiles
}
