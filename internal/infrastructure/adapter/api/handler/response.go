package handler

import (
	"errors"
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// logFielder is implemented by domain errors that carry structured context
type logFielder interface {
	LogFields() map[string]any
}

// parseID reads a positive numeric path parameter. On failure it writes a 400
// response built from invalidErr and returns false.
func parseID(c *gin.Context, param string, invalidErr error) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(invalidErr))
		return 0, false
	}
	return id, true
}

// respondError maps a domain error to its status and body and logs it.
// Server-side failures are logged at error level, client errors at warn.
func respondError(c *gin.Context, log coreport.Logger, message string, err error) {
	httpStatus := errs.HTTPStatus(err)

	fields := map[string]any{
		"error":  err.Error(),
		"path":   c.FullPath(),
		"status": httpStatus,
	}
	if id := logger.RequestIDFromContext(c.Request.Context()); id != "" {
		fields["request_id"] = id
	}
	var lf logFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}

	if httpStatus >= http.StatusInternalServerError {
		log.Error(message, fields)
	} else {
		log.Warn(message, fields)
	}
	c.JSON(httpStatus, dto.NewErrorResponse(err))
}

// respondBindingError answers a request whose body failed to bind
func respondBindingError(c *gin.Context, log coreport.Logger, err error) {
	log.Warn("Invalid request body", map[string]any{
		"error": err.Error(),
		"path":  c.FullPath(),
	})
	c.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
}
