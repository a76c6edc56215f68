package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kilimopesa_backend/test/helpers"
)

func TestProductCRUD(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts, helpers.UniqueUsername("seller"), helpers.UniqueEmail("seller"), "password123")
	categoryID := helpers.FirstCategoryID(t, ts.DB)

	// Create.
	res, body := ts.SendRequest(t, "POST", "/api/products", token, map[string]interface{}{
		"category_id": categoryID,
		"name":        "Mahindi",
		"description": "Fresh maize from Kitale",
		"price":       2500.0,
		"quantity":    40,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+body)

	var product struct {
		ID     string `json:"id"`
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &product))
	assert.Equal(t, user.ID, product.UserID)
	assert.Equal(t, "Mahindi", product.Name)

	// Read without auth.
	res, body = ts.SendRequest(t, "GET", "/api/products/"+product.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Mahindi")

	res, body = ts.SendRequest(t, "GET", "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, product.ID)

	// Partial update leaves other fields alone.
	res, body = ts.SendRequest(t, "PUT", "/api/products/"+product.ID, token, map[string]interface{}{
		"price": 2800.0,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Mahindi")
	assert.Contains(t, body, "2800")

	// Delete.
	res, _ = ts.SendRequest(t, "DELETE", "/api/products/"+product.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/products/"+product.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestProductCreate_UnknownCategory(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, helpers.UniqueUsername("badcat"), helpers.UniqueEmail("badcat"), "password123")

	res, body := ts.SendRequest(t, "POST", "/api/products", token, map[string]interface{}{
		"category_id": "4f9d97a2-58a9-4d3f-9f6a-000000000000",
		"name":        "Mahindi",
		"description": "Maize",
		"price":       100.0,
		"quantity":    1,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Category does not exist")
}

func TestListingWrites_RequireAuth(t *testing.T) {
	ts := GetTestServer(t)

	paths := []string{"/api/products", "/api/land", "/api/inputs", "/api/services", "/api/videos"}
	for _, path := range paths {
		res, _ := ts.SendRequest(t, "POST", path, "", map[string]interface{}{})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "POST %s should require a session", path)
	}
}

func TestListingWrites_OwnerOnly(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, _ := helpers.CreateAndLoginUser(t, ts, helpers.UniqueUsername("owner"), helpers.UniqueEmail("owner"), "password123")
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, helpers.UniqueUsername("other"), helpers.UniqueEmail("other"), "password123")

	res, body := ts.SendRequest(t, "POST", "/api/land", ownerToken, map[string]interface{}{
		"title":       "Shamba Nakuru",
		"description": "Five acres near the lake",
		"size":        5.0,
		"location":    "Nakuru",
		"price":       1200000.0,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+body)

	var land struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &land))

	// A different user cannot modify or delete the listing.
	res, _ = ts.SendRequest(t, "PUT", "/api/land/"+land.ID, otherToken, map[string]interface{}{
		"price": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/land/"+land.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The owner still can.
	res, _ = ts.SendRequest(t, "DELETE", "/api/land/"+land.ID, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestInputAndServiceCRUD(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, helpers.UniqueUsername("agro"), helpers.UniqueEmail("agro"), "password123")

	res, body := ts.SendRequest(t, "POST", "/api/inputs", token, map[string]interface{}{
		"name":        "DAP Fertilizer",
		"description": "50kg bag",
		"price":       6500.0,
		"quantity":    20,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+body)

	// A service may omit its price.
	res, body = ts.SendRequest(t, "POST", "/api/services", token, map[string]interface{}{
		"title":       "Tractor tilling",
		"description": "Per-acre tilling, price on request",
		"location":    "Eldoret",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+body)
	var svc struct {
		ID    string   `json:"id"`
		Price *float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &svc))
	assert.Nil(t, svc.Price)

	res, body = ts.SendRequest(t, "GET", "/api/services/"+svc.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Tractor tilling")
}
