package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"incubator/pkg/response"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKey requires the X-Admin-Key header to match the bcrypt hash.
// An empty hash locks the route.
func AdminKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hash == "" {
			response.Abort(c, http.StatusForbidden, "admin access is not configured")
			return
		}
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			response.Abort(c, http.StatusUnauthorized, "admin key required")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid admin key")
			return
		}
		c.Next()
	}
}
