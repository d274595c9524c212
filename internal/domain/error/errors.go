package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest         = 4000
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeInvalidAccountID       = 4004
	CodeConstraintViolation    = 4005
	CodeInvalidAccountName     = 4006
	CodeInvalidUsername        = 4007
	CodeInvalidRecordType      = 4008
	CodeDuplicateUser          = 4009
	CodeNotFound               = 4040
	CodeUserNotFound           = 4041
	CodeAccountNotFound        = 4042
	CodeRecordNotFound         = 4043
	CodeConcurrentModification = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidAccountName is returned when an account name is blank
	ErrInvalidAccountName = errors.New("account name cannot be blank")

	// ErrInvalidUsername is returned when a username is blank
	ErrInvalidUsername = errors.New("username cannot be blank")

	// ErrInvalidAmount is returned when a record amount is not a positive finite number
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInvalidRecordType is returned when the record type is not one of the allowed values
	ErrInvalidRecordType = errors.New("invalid transaction record type")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionUserNotFound is returned when the requested user doesn't exist
	ErrTransactionUserNotFound = errors.New("user not found")

	// ErrTransactionRecordNotFound is returned when the requested record doesn't exist
	ErrTransactionRecordNotFound = errors.New("transaction record not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrConcurrentModification is returned when a row is locked or a serializable tx conflicts
	ErrConcurrentModification = errors.New("resource was modified concurrently")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrInvalidAccountName):
		return CodeInvalidAccountName
	case errors.Is(err, ErrInvalidUsername):
		return CodeInvalidUsername
	case errors.Is(err, ErrInvalidRecordType):
		return CodeInvalidRecordType
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrTransactionUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTransactionRecordNotFound):
		return CodeRecordNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConcurrentModification):
		return CodeConcurrentModification
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status the API responds with
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidationError(err):
		return http.StatusBadRequest
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUser),
		errors.Is(err, ErrConcurrentModification),
		errors.Is(err, ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AccountError represents an error related to an operation on an account
type AccountError struct {
	AccountID uint64
	Operation string
	Err       error
}

// Error implements the error interface for AccountError
func (e *AccountError) Error() string {
	return fmt.Sprintf("account %d: %s failed: %v", e.AccountID, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *AccountError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AccountError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "account_error",
		"account_id": e.AccountID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAccountError creates a new account error
func NewAccountError(accountID uint64, operation string, err error) error {
	return &AccountError{
		AccountID: accountID,
		Operation: operation,
		Err:       err,
	}
}

// RecordError represents an error related to posting a transaction record
type RecordError struct {
	AccountID uint64
	Type      string
	Amount    float64
	Err       error
}

// Error implements the error interface for RecordError
func (e *RecordError) Error() string {
	return fmt.Sprintf("transaction record error for account %d (type: %s, amount: %.2f): %v",
		e.AccountID, e.Type, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RecordError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "record_error",
		"account_id": e.AccountID,
		"type":       e.Type,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRecordError creates a detailed transaction record error
func NewRecordError(accountID uint64, recordType string, amount float64, err error) error {
	return &RecordError{
		AccountID: accountID,
		Type:      recordType,
		Amount:    amount,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionUserNotFound) ||
		errors.Is(err, ErrTransactionRecordNotFound)
}

// IsValidationError checks if the error was caused by invalid caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAccountID) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidAccountName) ||
		errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRecordType)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionUserNotFound)
}
