package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kilimopesa_backend/internal/models"
)

// CreateVerifiedUser inserts a user directly, already verified and active,
// with the raw password bcrypt-hashed.
func CreateVerifiedUser(t *testing.T, db *gorm.DB, username, emailAddr, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "Failed to hash password")

	user := &models.User{
		Username:        username,
		Email:           emailAddr,
		PasswordHash:    string(hash),
		IsEmailVerified: true,
		IsActive:        true,
	}
	require.NoError(t, db.Create(user).Error, "Failed to create test user")
	return user
}

// CreateAndLoginUser creates a verified user and logs in through the API,
// returning the session token and the user record.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, emailAddr, password string) (string, *models.User) {
	user := CreateVerifiedUser(t, ts.DB, username, emailAddr, password)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    emailAddr,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token, "Token should not be empty")

	return loginResponse.Token, user
}

// UniqueEmail returns an address that will not collide across test runs.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.co.ke", prefix, time.Now().UnixNano())
}

// UniqueUsername returns a username that will not collide across test runs.
func UniqueUsername(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// FirstCategoryID returns the id of one seeded category.
func FirstCategoryID(t *testing.T, db *gorm.DB) string {
	var category models.Category
	require.NoError(t, db.Order("name ASC").First(&category).Error, "Categories should be seeded")
	return category.ID
}
