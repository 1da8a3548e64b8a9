//go:build unit

package api_test

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/jwt"
)

// fakeAuth treats the bearer token as the caller role. A request without a
// token is rejected the way RequireAuth does.
func fakeAuth(callerID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if len(h) <= len("Bearer ") {
			c.AbortWithStatusJSON(401, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetIdentity(c, jwt.Identity{
			UserID: callerID,
			Role:   user.Role(h[len("Bearer "):]),
			Email:  "caller@example.com",
			Name:   "Caller",
		})
		c.Next()
	}
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
