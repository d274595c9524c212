package middleware

import (
	"fmt"
	"net/http"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(recovered),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": logger.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errs.ErrInternalServer))
			}
		}()

		c.Next()
	}
}
