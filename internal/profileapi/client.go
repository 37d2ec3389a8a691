// Package profileapi provides the profile-data capability: fetching raw
// candidate records by identifier from a hosted profile API.
package profileapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jonathan/talent-scout/internal/fetch"
	"github.com/jonathan/talent-scout/internal/schemas"
	"github.com/jonathan/talent-scout/internal/types"
)

// DefaultAPIHost is the default RapidAPI host serving profile data.
const DefaultAPIHost = "linkedin-api8.p.rapidapi.com"

// Fetcher is the profile-data capability consumed by the collector.
type Fetcher interface {
	// FetchByIdentifier returns the raw profile for an identifier, or an
	// error when the record is unavailable. Callers treat errors as
	// "absent", not as batch failures.
	FetchByIdentifier(ctx context.Context, identifier string) (*types.RawProfile, error)
}

// Client fetches profile records over a RapidAPI-hosted profile endpoint.
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	options *fetch.Options
}

// Config configures the profile API client.
type Config struct {
	APIKey  string
	APIHost string // defaults to DefaultAPIHost
	BaseURL string // override for testing; defaults to https://<APIHost>/
	Options *fetch.Options
}

// NewClient creates a new profile API client.
func NewClient(config *Config) (*Client, error) {
	if config == nil || config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	apiHost := config.APIHost
	if apiHost == "" {
		apiHost = DefaultAPIHost
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s/", apiHost)
	}
	options := config.Options
	if options == nil {
		options = fetch.DefaultOptions()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  config.APIKey,
		apiHost: apiHost,
		options: options,
	}, nil
}

// FetchByIdentifier retrieves the raw profile record for an identifier.
// The response body is checked against the provider schema before decoding,
// so malformed provider payloads are rejected at this boundary.
func (c *Client) FetchByIdentifier(ctx context.Context, identifier string) (*types.RawProfile, error) {
	if identifier == "" {
		return nil, fmt.Errorf("identifier is empty")
	}

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, url.Values{"username": {identifier}}.Encode())

	opts := *c.options
	opts.Headers = map[string]string{
		"x-rapidapi-key":  c.apiKey,
		"x-rapidapi-host": c.apiHost,
	}
	for k, v := range c.options.Headers {
		opts.Headers[k] = v
	}

	result, err := fetch.URL(ctx, requestURL, &opts)
	if err != nil {
		return nil, fmt.Errorf("profile fetch failed for %s: %w", identifier, err)
	}
	if result.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile fetch for %s returned status %d", identifier, result.StatusCode)
	}

	body := []byte(result.Body)
	if err := schemas.ValidateRawProfile(body); err != nil {
		return nil, fmt.Errorf("invalid profile record for %s: %w", identifier, err)
	}

	var raw types.RawProfile
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode profile for %s: %w", identifier, err)
	}
	if raw.Username == "" {
		raw.Username = identifier
	}

	return &raw, nil
}
