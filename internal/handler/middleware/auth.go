package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/pkg/jwt"
	"estate-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxIdentityKey = "identity"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		id, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth sets the caller identity when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		if id, err := m.tokenValidator.ValidateToken(token); err == nil {
			SetIdentity(c, id)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Unauthorized", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, jwt.ErrInvalidToken, "Insufficient permissions",
				map[string]any{"required_role": minRole.String()})
			return
		}

		c.Next()
	}
}

// SetIdentity stores the caller on the gin context.
func SetIdentity(c *gin.Context, id jwt.Identity) {
	c.Set(ctxUserIDKey, id.UserID)
	c.Set(ctxUserRoleKey, id.Role)
	c.Set(ctxIdentityKey, id)
	c.Set("jwt_claims", map[string]any{
		"user_id": id.UserID.String(),
		"role":    string(id.Role),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

func GetIdentity(c *gin.Context) (jwt.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return jwt.Identity{}, false
	}
	id, ok := v.(jwt.Identity)
	return id, ok
}
