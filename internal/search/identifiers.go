package search

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
)

// ProfileHost is the profile-hosting domain discovery is constrained to.
const ProfileHost = "linkedin.com"

// profilePathPrefix is the URL path segment that public profiles live under.
const profilePathPrefix = "in"

// BuildProfileQuery builds the constrained search query for a role. The
// site: restriction keeps results on public profile pages, and the negative
// terms exclude job-listing and careers aggregator pages.
func BuildProfileQuery(role, location string) string {
	locationTerm := ""
	if location != "" {
		locationTerm = fmt.Sprintf(" %q", location)
	}
	return fmt.Sprintf("site:%s/%s/ %q%s -jobs -careers", ProfileHost, profilePathPrefix, role, locationTerm)
}

// ExtractIdentifiers pulls profile identifiers out of result URLs. Only URLs
// under the profile path are accepted. Identifiers are deduplicated with
// first-seen order preserved and capped at count.
func ExtractIdentifiers(urls []string, count int) []string {
	seen := make(map[string]bool)
	var identifiers []string

	for _, rawURL := range urls {
		if count > 0 && len(identifiers) >= count {
			break
		}
		id := identifierFromURL(rawURL)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		identifiers = append(identifiers, id)
	}

	return identifiers
}

// identifierFromURL returns the profile identifier segment of a URL, or ""
// if the URL is not a public profile page.
func identifierFromURL(rawURL string) string {
	if !strings.Contains(rawURL, ProfileHost+"/"+profilePathPrefix+"/") {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || !strings.EqualFold(parts[0], profilePathPrefix) {
		return ""
	}
	return parts[1]
}

// Discoverer turns a (role, location, count) query into profile identifiers
// using a Searcher.
type Discoverer struct {
	searcher Searcher
}

// NewDiscoverer creates a Discoverer backed by the given search provider.
func NewDiscoverer(searcher Searcher) *Discoverer {
	return &Discoverer{searcher: searcher}
}

// DiscoverIdentifiers searches for profiles matching the role and returns at
// most count identifiers. Search-provider failure is soft: it is logged and
// an empty list is returned, because discovery is best-effort.
func (d *Discoverer) DiscoverIdentifiers(ctx context.Context, role, location string, count int) []string {
	query := BuildProfileQuery(role, location)
	log.Printf("[SEARCH] Discovering profiles with query: %s", query)

	// Request more results than needed; listing pages and duplicates are
	// filtered out below.
	urls, err := d.searcher.Search(ctx, query, count*3)
	if err != nil {
		log.Printf("[SEARCH] Search failed: %v", err)
		return nil
	}

	identifiers := ExtractIdentifiers(urls, count)
	log.Printf("[SEARCH] Extracted %d profile identifiers", len(identifiers))
	return identifiers
}
