package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private type for request context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	partnerIDKey = contextKey("partnerID")
)

// GetPartnerIDFromContext retrieves the authenticated partner ID from the Gin
// context. It returns the partner ID and a boolean indicating if it was found.
func GetPartnerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(partnerIDKey)); exists {
		if partnerID, ok := v.(string); ok {
			return partnerID, true
		}
		return "", false
	}
	// Check the request context as well; the auth middleware stores it there.
	if v := c.Request.Context().Value(partnerIDKey); v != nil {
		return v.(string), true
	}
	return "", false
}
