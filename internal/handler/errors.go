package handler

import (
	"errors"
	"net/http"
	"time"

	"cargofunds/internal/service"
	"cargofunds/pkg/apperror"
	"cargofunds/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeError maps service errors onto the response envelope.
func writeError(c *gin.Context, err error) {
	switch {
	case apperror.IsNotFound(err):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	case apperror.IsInvalid(err):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
}

func badPayload(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}

// parseDate reads a YYYY-MM-DD value. An empty value yields nil.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(service.DateLayout, raw)
	if err != nil {
		return nil, apperror.Invalidf("Invalid date: %s. Expected format YYYY-MM-DD", raw)
	}
	return &t, nil
}
