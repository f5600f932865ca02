package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenKey is the gin context key the storefront client reads its bearer
// token from.
const TokenKey = "storefrontToken"

// TokenPassthrough lifts the incoming Authorization bearer token into the
// request context so upstream calls carry the same credentials. The gateway
// does not validate the token itself; the storefront backend owns auth.
func TokenPassthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			c.Set(TokenKey, strings.TrimPrefix(auth, "Bearer "))
		}
		c.Next()
	}
}

// Token returns the passthrough token for the request, empty if absent.
func Token(c *gin.Context) string {
	if v, ok := c.Get(TokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
