package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/types"
)

// fixedSearcher yields profile URLs for a fixed set of identifiers.
type fixedSearcher struct {
	identifiers []string
}

func (s *fixedSearcher) Search(_ context.Context, _ string, _ int) ([]string, error) {
	var urls []string
	for _, id := range s.identifiers {
		urls = append(urls, "https://www.linkedin.com/in/"+id)
	}
	return urls, nil
}

// mapFetcher serves raw profiles from a map; missing identifiers error.
type mapFetcher struct {
	profiles map[string]*types.RawProfile
}

func (f *mapFetcher) FetchByIdentifier(_ context.Context, identifier string) (*types.RawProfile, error) {
	raw, ok := f.profiles[identifier]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return raw, nil
}

// recordingWriter records upserted identifiers.
type recordingWriter struct {
	upserted []string
}

func (w *recordingWriter) Upsert(_ context.Context, p *types.CandidateProfile) string {
	if p.Identifier == "" {
		return ""
	}
	w.upserted = append(w.upserted, p.Identifier)
	return "profile_" + p.Identifier
}

func TestCollect_HappyPath(t *testing.T) {
	writer := &recordingWriter{}
	collector := NewCollector(
		search.NewDiscoverer(&fixedSearcher{identifiers: []string{"jane-doe", "john-smith"}}),
		&mapFetcher{profiles: map[string]*types.RawProfile{
			"jane-doe":   {Username: "jane-doe", Name: "Jane Doe"},
			"john-smith": {Username: "john-smith", Name: "John Smith"},
		}},
		writer,
	)

	profiles := collector.Collect(context.Background(), "Data Engineer", "", 5)
	require.Len(t, profiles, 2)
	assert.Equal(t, []string{"jane-doe", "john-smith"}, writer.upserted)
	assert.NotEmpty(t, profiles[0].CanonicalText)
}

func TestCollect_SkipsFailedFetches(t *testing.T) {
	writer := &recordingWriter{}
	collector := NewCollector(
		search.NewDiscoverer(&fixedSearcher{identifiers: []string{"gone", "jane-doe", "also-gone"}}),
		&mapFetcher{profiles: map[string]*types.RawProfile{
			"jane-doe": {Username: "jane-doe", Name: "Jane Doe"},
		}},
		writer,
	)

	profiles := collector.Collect(context.Background(), "Data Engineer", "", 5)
	require.Len(t, profiles, 1)
	assert.Equal(t, "jane-doe", profiles[0].Identifier)
	assert.Equal(t, []string{"jane-doe"}, writer.upserted)
}

func TestCollect_EmptyDiscovery(t *testing.T) {
	collector := NewCollector(
		search.NewDiscoverer(&fixedSearcher{}),
		&mapFetcher{},
		&recordingWriter{},
	)

	profiles := collector.Collect(context.Background(), "Data Engineer", "", 5)
	assert.Empty(t, profiles)
}

func TestCollect_RespectsCount(t *testing.T) {
	fetcher := &mapFetcher{profiles: map[string]*types.RawProfile{
		"a": {Username: "a"}, "b": {Username: "b"}, "c": {Username: "c"},
	}}
	collector := NewCollector(
		search.NewDiscoverer(&fixedSearcher{identifiers: []string{"a", "b", "c"}}),
		fetcher,
		&recordingWriter{},
	)

	profiles := collector.Collect(context.Background(), "Data Engineer", "", 2)
	assert.Len(t, profiles, 2)
}
