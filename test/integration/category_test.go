package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_SeededAndReadOnly(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var categories []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &categories))
	require.Len(t, categories, 3)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "mazao_ya_biashara")
	assert.Contains(t, names, "mazao_ya_chakula")
	assert.Contains(t, names, "nafaka")

	res, body = ts.SendRequest(t, "GET", "/api/categories/"+categories[0].ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, categories[0].Name)

	// No write surface is mounted for categories.
	res, _ = ts.SendRequest(t, "POST", "/api/categories", "", map[string]interface{}{"name": "x"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
