package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kilimopesa_backend/internal/auth"
	"kilimopesa_backend/internal/logger"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/pkg/apperrors"
	"kilimopesa_backend/pkg/contextkeys"
)

const (
	userIDContextKey    = "userID"
	sessionIDContextKey = "sessionID"
)

// SessionMiddleware authenticates a request by its Bearer token. The token
// signature alone is not enough: the referenced session row must still exist
// and be unexpired, so logout takes effect immediately.
func SessionMiddleware(sessionRepo repositories.SessionRepository, tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseSessionToken(tokenStr, tokenSecret)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			logger.CtxError(c.Request.Context(), "session middleware requires DBMiddleware")
			apperrors.HandleError(c, apperrors.InternalError(errors.New("db key not found in context")))
			c.Abort()
			return
		}

		session, err := sessionRepo.FindByID(db.(*gorm.DB), claims.SessionID)
		if err != nil || session.UserID != claims.UserID || time.Now().After(session.ExpiresAt) {
			abortUnauthorized(c)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(userIDContextKey, claims.UserID)
		c.Set(sessionIDContextKey, claims.SessionID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	apperrors.HandleError(c, apperrors.ErrSessionRequired)
	c.Abort()
}

func GetUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(userIDContextKey)
	if !ok {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

func GetSessionID(c *gin.Context) (string, bool) {
	val, ok := c.Get(sessionIDContextKey)
	if !ok {
		return "", false
	}
	sessionID, ok := val.(string)
	return sessionID, ok
}
