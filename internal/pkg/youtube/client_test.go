package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ClientImpl {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key", 5)
	client.baseURL = server.URL
	return client
}

func TestSearch_BuildsRequestAndRelaysBody(t *testing.T) {
	upstream := `{"kind":"youtube#searchListResponse","items":[{"id":{"videoId":"abc"}}]}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "maize farming", q.Get("q"))
		assert.Equal(t, "5", q.Get("maxResults"))
		assert.Equal(t, "test-key", q.Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	})

	body, err := client.Search(context.Background(), "maize farming")
	require.NoError(t, err)
	assert.JSONEq(t, upstream, string(body))
}

func TestSearch_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})

	_, err := client.Search(context.Background(), "maize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSearch_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Search(context.Background(), "maize")
	assert.Error(t, err)
}

func TestNewClient_DefaultMaxResults(t *testing.T) {
	client := NewClient("k", 0)
	assert.Equal(t, 10, client.maxResults)
}
