package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProfileQuery_WithLocation(t *testing.T) {
	query := BuildProfileQuery("Data Engineer", "Berlin")
	assert.Equal(t, `site:linkedin.com/in/ "Data Engineer" "Berlin" -jobs -careers`, query)
}

func TestBuildProfileQuery_NoLocation(t *testing.T) {
	query := BuildProfileQuery("Data Engineer", "")
	assert.Equal(t, `site:linkedin.com/in/ "Data Engineer" -jobs -careers`, query)
}

func TestExtractIdentifiers_AcceptsProfilePathsOnly(t *testing.T) {
	urls := []string{
		"https://www.linkedin.com/in/jane-doe",
		"https://www.linkedin.com/jobs/view/12345",
		"https://www.linkedin.com/company/acme",
		"https://example.com/in/not-a-profile",
		"https://linkedin.com/in/john-smith/details",
	}

	ids := ExtractIdentifiers(urls, 10)
	assert.Equal(t, []string{"jane-doe", "john-smith"}, ids)
}

func TestExtractIdentifiers_DeduplicatesPreservingOrder(t *testing.T) {
	urls := []string{
		"https://www.linkedin.com/in/jane-doe",
		"https://www.linkedin.com/in/john-smith",
		"https://www.linkedin.com/in/jane-doe?trk=search",
	}

	ids := ExtractIdentifiers(urls, 10)
	assert.Equal(t, []string{"jane-doe", "john-smith"}, ids)
}

func TestExtractIdentifiers_CapsAtCount(t *testing.T) {
	urls := []string{
		"https://www.linkedin.com/in/a",
		"https://www.linkedin.com/in/b",
		"https://www.linkedin.com/in/c",
	}

	ids := ExtractIdentifiers(urls, 2)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestExtractIdentifiers_Empty(t *testing.T) {
	assert.Empty(t, ExtractIdentifiers(nil, 5))
}

// stubSearcher returns fixed URLs or a fixed error.
type stubSearcher struct {
	urls []string
	err  error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]string, error) {
	return s.urls, s.err
}

func TestDiscoverIdentifiers_SearchFailureIsSoft(t *testing.T) {
	d := NewDiscoverer(&stubSearcher{err: errors.New("rate limited")})

	ids := d.DiscoverIdentifiers(context.Background(), "Data Engineer", "", 5)
	assert.Empty(t, ids)
}

func TestDiscoverIdentifiers_ReturnsCappedIdentifiers(t *testing.T) {
	d := NewDiscoverer(&stubSearcher{urls: []string{
		"https://www.linkedin.com/in/jane-doe",
		"https://www.linkedin.com/jobs/view/999",
		"https://www.linkedin.com/in/john-smith",
		"https://www.linkedin.com/in/third-person",
	}})

	ids := d.DiscoverIdentifiers(context.Background(), "Data Engineer", "Berlin", 2)
	assert.Equal(t, []string{"jane-doe", "john-smith"}, ids)
}

func TestParseResultLinks_UnwrapsRedirects(t *testing.T) {
	html := `
	<html><body>
		<a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fin%2Fjane-doe">Jane</a>
		<a class="result__a" href="https://www.linkedin.com/in/john-smith">John</a>
		<a href="/settings">Settings</a>
	</body></html>`

	links, err := parseResultLinks(html, 10)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.linkedin.com/in/jane-doe",
		"https://www.linkedin.com/in/john-smith",
	}, links)
}
