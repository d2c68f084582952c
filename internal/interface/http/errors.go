package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/interface/middleware"
	"github.com/oksasatya/go-contact-management/pkg/helpers"
	"github.com/oksasatya/go-contact-management/pkg/response"
	"github.com/oksasatya/go-contact-management/pkg/validation"
)

// writeError maps service errors to status codes and the errors envelope.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		response.Error(c, http.StatusBadRequest, ve.Fields)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrUnauthenticated),
		errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, application.ErrUsernameTaken):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString(middleware.CtxRequestIDKey),
			"path":       c.FullPath(),
		})
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindJSON decodes the body into dst and writes a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return false
	}
	return true
}

// pathID parses a numeric path parameter. Malformed values become 0 and are
// rejected by the request schema.
func pathID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
