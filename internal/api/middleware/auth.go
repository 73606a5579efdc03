package middleware

import (
	"ctchen222/travel-assistant/internal/api/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// TokenValidator resolves a bearer token to the user id it was issued for.
type TokenValidator interface {
	Validate(token string) (string, bool)
}

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the token's user id on the context.
func BearerAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if authHeader == "" || !found || !strings.EqualFold(scheme, "Bearer") {
			c.Header("WWW-Authenticate", "Bearer")
			response.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, ok := tokens.Validate(strings.TrimSpace(token))
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			response.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by BearerAuth.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(userIDKey)
	return userID, userID != ""
}
