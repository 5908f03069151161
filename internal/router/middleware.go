package router

import (
	"net/http"
	"strings"

	"github.com/cashpilot/backend/internal/auth"
	v1 "github.com/cashpilot/backend/internal/controllers/v1"
	"github.com/gin-gonic/gin"
)

// Authenticate verifies the bearer token of the request and stores the
// actor on the context. Requests without a valid access token are
// rejected with a 401.
func Authenticate(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": auth.ErrTokenInvalid.Error(),
			})
			return
		}

		claims, err := issuer.ValidateAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": auth.ErrTokenInvalid.Error(),
			})
			return
		}

		c.Set(v1.ContextKeyUserID, claims.UserID)
		c.Set(v1.ContextKeyAccountID, claims.AccountID)
		c.Set(v1.ContextKeyRole, claims.Role)

		c.Next()
	}
}
