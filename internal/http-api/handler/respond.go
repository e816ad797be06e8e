package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"moviehub/internal/http-api/apperr"
	"moviehub/internal/http-api/middleware"

	"github.com/gin-gonic/gin"
)

// writeError translates a service error into an HTTP response. Anything
// outside the apperr taxonomy is logged and hidden behind a 500.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	var (
		validationErr    *apperr.ValidationError
		notFoundErr      *apperr.NotFoundError
		conflictErr      *apperr.ConflictError
		duplicateNameErr *apperr.DuplicateNameError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Fields})
	case errors.As(err, &duplicateNameErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": duplicateNameErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"message": conflictErr.Error()})
	default:
		logger.Error("request failed",
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
