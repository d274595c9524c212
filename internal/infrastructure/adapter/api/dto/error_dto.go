package dto

import (
	"net/http"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds the body for a domain error. Server-side failures
// are reported without their internal detail.
func NewErrorResponse(err error) ErrorResponse {
	message := err.Error()
	if errs.HTTPStatus(err) >= http.StatusInternalServerError {
		message = "Internal server error"
	}
	return ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	}
}

// NewBindingErrorResponse builds the body for a request that failed binding
func NewBindingErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	}
}
