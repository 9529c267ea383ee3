package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"microblog-backend/pkg/jwt"
)

const (
	// IdentityKey is the gin context key the resolved identity is stored under.
	IdentityKey = "identity"
)

// Identity is the authenticated principal of the current request.
// Absent from the context for anonymous requests.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// ResolveIdentity extracts and verifies the JWT from the Authorization
// header or the auth cookie and stores the identity in the context.
// Anonymous requests pass through untouched; authorization decisions
// are made downstream by the access guard.
func ResolveIdentity(jwtManager *jwt.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwtManager.ParseToken(token)
		if err != nil || claims.Type != "access" {
			// Invalid token counts as anonymous, not as an error
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(IdentityKey, &Identity{
			UserID:   userID,
			Username: claims.Username,
		})

		c.Next()
	}
}

// CurrentIdentity returns the identity set by ResolveIdentity, or nil
// for anonymous requests.
func CurrentIdentity(c *gin.Context) *Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}

	identity, ok := value.(*Identity)
	if !ok {
		return nil
	}

	return identity
}

// extractToken reads "Bearer <token>" from the Authorization header,
// falling back to the auth cookie for browser-style clients.
func extractToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
