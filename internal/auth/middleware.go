package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipevault/recipevault/internal/entities"
)

// ContextKeyIdentity is the Gin context key holding the authenticated
// identity on protected routes.
const ContextKeyIdentity = "auth_identity"

// Middleware guards routes behind bearer-token authentication.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireBearer returns a handler that authenticates the request from its
// Authorization header. A missing header, a non-Bearer scheme, or a token
// that fails validation all abort with the same 401 body.
func (m *Middleware) RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c)
			return
		}

		identity, err := m.tokens.Validate(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer"
// header. Any other shape is an authentication miss, not an error.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "authentication required",
	})
}

// CurrentIdentity retrieves the authenticated identity from the Gin
// context. The second return is false on unguarded routes.
func CurrentIdentity(c *gin.Context) (entities.Identity, bool) {
	v, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}
