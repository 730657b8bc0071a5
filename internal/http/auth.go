package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipevault/recipevault/internal/auth"
)

// AuthController handles login and token refresh.
type AuthController struct {
	authService *auth.Service
	tokens      *auth.TokenManager
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *auth.Service, tokens *auth.TokenManager) *AuthController {
	return &AuthController{
		authService: authService,
		tokens:      tokens,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a username/password pair and issues a bearer
// token. Credential failures return one opaque message regardless of
// which factor was wrong; store faults return a server fault instead of
// a login failure.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	identity, err := ac.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.IncorrectCredentialsMessage})
			return
		}
		writeServerFault(c)
		return
	}

	token, err := ac.tokens.Issue(identity)
	if err != nil {
		writeServerFault(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authToken": token})
}

// Refresh reissues a token for the already-authenticated caller,
// extending the expiry window without another password exchange.
func (ac *AuthController) Refresh(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	token, err := ac.tokens.Issue(identity)
	if err != nil {
		writeServerFault(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authToken": token})
}
