package profileapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&Config{})
	assert.Error(t, err)

	_, err = NewClient(nil)
	assert.Error(t, err)
}

func TestFetchByIdentifier_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jane-doe", r.URL.Query().Get("username"))
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"username": "jane-doe",
			"name": "Jane Doe",
			"headline": "Data Engineer",
			"skills": ["Python", "SQL"]
		}`))
	})

	raw, err := client.FetchByIdentifier(context.Background(), "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", raw.Name)
	assert.Equal(t, []string{"Python", "SQL"}, raw.Skills)
}

func TestFetchByIdentifier_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchByIdentifier(context.Background(), "jane-doe")
	assert.Error(t, err)
}

func TestFetchByIdentifier_SchemaRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "No Username"}`))
	})

	_, err := client.FetchByIdentifier(context.Background(), "jane-doe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile record")
}

func TestFetchByIdentifier_FillsIdentifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"username": "jane-doe"}`))
	})

	raw, err := client.FetchByIdentifier(context.Background(), "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", raw.Username)
}

func TestFetchByIdentifier_EmptyIdentifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.FetchByIdentifier(context.Background(), "")
	assert.Error(t, err)
}
