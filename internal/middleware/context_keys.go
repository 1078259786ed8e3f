package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the Gin context.
const userIDKey = contextKey("userID")

// sessionHeader carries the shopper's session identifier used to key the
// persisted display preference.
const sessionHeader = "X-Session-ID"

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetSessionID returns the shopper session identifier from the request, or
// "" when the header is absent.
func GetSessionID(c *gin.Context) string {
	return c.GetHeader(sessionHeader)
}
