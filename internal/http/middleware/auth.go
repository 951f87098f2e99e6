// README: Auth middleware (Bearer access token verification).
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"daytrip/internal/modules/member"
)

const memberIDKey = "memberID"

// Auth verifies the Authorization header and stores the member ID on the
// request context for handlers behind it.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := member.VerifyAccessToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(memberIDKey, claims.MemberID)
		c.Next()
	}
}

// MemberID returns the authenticated member ID set by Auth.
func MemberID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(memberIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
