package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanjid017/membership-registration-backend/internal/admin"
)

// AdminAuth guards the admin endpoints. The session token is accepted from
// the Authorization Bearer header or the X-Admin-Token header.
func AdminAuth(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := admin.TokenFromRequest(c)
		if !svc.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}
		c.Set("adminToken", token)
		c.Next()
	}
}
