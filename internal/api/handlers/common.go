package handlers

import (
	"context"
	"errors"
	"net/http"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// StatusForError maps a domain error to the HTTP status returned to the client
func StatusForError(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrUnknownConnection):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrSessionStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleError provides a consistent way to handle errors in route handlers
func HandleError(c *gin.Context, err error) {
	status := StatusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("API error",
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Err(err))
	} else {
		logger.Debug("API request rejected",
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Err(err))
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
	})
}
