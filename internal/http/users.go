package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipevault/recipevault/internal/auth"
)

// UsersController handles signup and password management.
type UsersController struct {
	authService *auth.Service
}

// NewUsersController creates a new UsersController.
func NewUsersController(authService *auth.Service) *UsersController {
	return &UsersController{
		authService: authService,
	}
}

// Signup registers a new user.
//
// The body decodes into raw JSON values so the validator can classify a
// missing field and a wrongly typed field separately; a typed struct
// bind would collapse both into one generic error.
func (uc *UsersController) Signup(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	username, password, verr := auth.ValidateSignup(body)
	if verr != nil {
		writeValidationError(c, verr)
		return
	}

	identity, err := uc.authService.CreateUser(username, password)
	if err != nil {
		var validationErr *auth.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationError(c, validationErr)
			return
		}
		writeServerFault(c)
		return
	}

	c.JSON(http.StatusCreated, identity)
}

// Me returns the authenticated identity.
func (uc *UsersController) Me(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

// ChangePassword rotates the caller's password after reauthentication.
// The target record is the token identity; the request carries no user
// id anywhere.
func (uc *UsersController) ChangePassword(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	// Both passwords must be present strings before any store access.
	passwords := make(map[string]string, 2)
	for _, field := range []string{"currentPassword", "newPassword"} {
		raw, present := body[field]
		if !present {
			writeValidationError(c, &auth.ValidationError{Message: "Missing field", Field: field})
			return
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			writeValidationError(c, &auth.ValidationError{
				Message: "Incorrect field type: expected string",
				Field:   field,
			})
			return
		}
		passwords[field] = s
	}

	if verr := auth.ValidatePasswordLength(passwords["newPassword"], "newPassword"); verr != nil {
		writeValidationError(c, verr)
		return
	}

	err := uc.authService.ChangePassword(identity.ID, passwords["currentPassword"], passwords["newPassword"])
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeValidationError(c, &auth.ValidationError{
				Message: auth.IncorrectCredentialsMessage,
				Field:   "currentPassword",
			})
			return
		}
		writeServerFault(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Password updated successfully"})
}
