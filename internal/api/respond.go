package api

import (
	"net/http"

	"marketplace/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Envelope is the uniform response body for every endpoint
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respondOK writes a success envelope
func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// respondError translates a service error into the envelope. Internal
// causes are logged server-side and never leak into the response body.
func respondError(c *gin.Context, err error, fallback string) {
	status := apperr.HTTPStatus(err)
	message := apperr.Message(err, fallback)
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
	}
	c.JSON(status, Envelope{Success: false, Message: message, Error: message})
}
