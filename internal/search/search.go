// Package search provides candidate discovery via web search. A constrained
// query restricts results to the profile-hosting domain, and identifier
// segments are extracted from the accepted result URLs.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/talent-scout/internal/fetch"
)

// Searcher is the search capability: a query in, result URLs out, in the
// engine's relevance order. Any provider satisfying this shape is acceptable.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
}

// WebSearcher implements Searcher by scraping the DuckDuckGo HTML endpoint.
// It needs no API key, which matches the best-effort nature of discovery.
type WebSearcher struct {
	endpoint   string
	options    *fetch.Options
	useBrowser bool
	verbose    bool
}

// WebSearcherConfig configures a WebSearcher.
type WebSearcherConfig struct {
	Endpoint   string // defaults to the DuckDuckGo HTML endpoint
	Options    *fetch.Options
	UseBrowser bool // render with a headless browser when the HTML shell is empty
	Verbose    bool
}

// DefaultEndpoint is the no-JavaScript search results endpoint.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

// NewWebSearcher creates a search provider that scrapes result pages.
func NewWebSearcher(config *WebSearcherConfig) *WebSearcher {
	if config == nil {
		config = &WebSearcherConfig{}
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	options := config.Options
	if options == nil {
		options = fetch.DefaultOptions()
	}
	return &WebSearcher{
		endpoint:   endpoint,
		options:    options,
		useBrowser: config.UseBrowser,
		verbose:    config.Verbose,
	}
}

// Search fetches a results page for the query and returns result URLs in
// page order, at most maxResults of them.
func (s *WebSearcher) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	searchURL := fmt.Sprintf("%s?q=%s", s.endpoint, url.QueryEscape(query))

	result, err := fetch.URL(ctx, searchURL, s.options)
	if err != nil && result == nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	html := result.Body
	if s.useBrowser && fetch.ShouldUseBrowser(html) {
		html, err = fetch.BrowserSimple(ctx, searchURL, s.verbose)
		if err != nil {
			return nil, fmt.Errorf("browser search failed: %w", err)
		}
	}

	return parseResultLinks(html, maxResults)
}

// parseResultLinks extracts outbound result URLs from a search results page.
func parseResultLinks(html string, maxResults int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}

	var links []string
	doc.Find("a.result__a, a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if maxResults > 0 && len(links) >= maxResults {
			return false
		}
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		if resolved := resolveResultURL(href); resolved != "" {
			links = append(links, resolved)
		}
		return true
	})

	return links, nil
}

// resolveResultURL unwraps engine redirect links and filters out
// navigation anchors. Returns "" for URLs that are not outbound results.
func resolveResultURL(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	// DuckDuckGo wraps outbound links as /l/?uddg=<encoded>
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	if parsed.Host == "" || strings.Contains(parsed.Host, "duckduckgo.com") {
		return ""
	}
	return href
}
