package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipevault/recipevault/internal/auth"
)

// ValidationErrorResponse is the stable error body for request
// validation failures. Location names the offending field.
type ValidationErrorResponse struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

func writeValidationError(c *gin.Context, verr *auth.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Code:     http.StatusUnprocessableEntity,
		Reason:   "ValidationError",
		Message:  verr.Message,
		Location: verr.Field,
	})
}

// writeServerFault hides store and internal failures behind a generic
// body so no collaborator detail leaks to the client.
func writeServerFault(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    http.StatusInternalServerError,
		"message": "Internal Server Error",
	})
}
