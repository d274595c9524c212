package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrAccountNotFound.Error() != "account not found" {
		t.Errorf("ErrAccountNotFound has unexpected message: %s", ErrAccountNotFound.Error())
	}
	if ErrInvalidAmount.Error() != "amount must be a positive number" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidAccountID", ErrInvalidAccountID, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"InvalidAccountName", ErrInvalidAccountName, 4006},
		{"InvalidRecordType", ErrInvalidRecordType, 4008},
		{"DuplicateUser", ErrDuplicateUser, 4009},
		{"UserNotFound", ErrTransactionUserNotFound, 4041},
		{"AccountNotFound", ErrAccountNotFound, 4042},
		{"RecordNotFound", ErrTransactionRecordNotFound, 4043},
		{"ConcurrentModification", ErrConcurrentModification, 4090},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAccountID), 4004},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Nil", nil, http.StatusOK},
		{"Validation", ErrInvalidAccountName, http.StatusBadRequest},
		{"NotFound", ErrAccountNotFound, http.StatusNotFound},
		{"WrappedNotFound", fmt.Errorf("lookup: %w", ErrTransactionUserNotFound), http.StatusNotFound},
		{"Duplicate", ErrDuplicateUser, http.StatusConflict},
		{"Concurrent", ErrConcurrentModification, http.StatusConflict},
		{"Database", ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestAccountError(t *testing.T) {
	accErr := NewAccountError(42, "delete", ErrAccountNotFound)

	expectedErrMsg := "account 42: delete failed: account not found"
	if accErr.Error() != expectedErrMsg {
		t.Errorf("AccountError.Error() = %s, want %s", accErr.Error(), expectedErrMsg)
	}

	if !errors.Is(accErr, ErrAccountNotFound) {
		t.Errorf("errors.Is(accErr, ErrAccountNotFound) = false, want true")
	}

	var target *AccountError
	if !errors.As(accErr, &target) {
		t.Fatalf("errors.As failed for AccountError")
	}
	fields := target.LogFields()
	if fields["account_id"] != uint64(42) {
		t.Errorf("LogFields account_id = %v, want 42", fields["account_id"])
	}
	if fields["error_code"] != CodeAccountNotFound {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeAccountNotFound)
	}
}

func TestRecordError(t *testing.T) {
	recErr := NewRecordError(7, "refund", 12.5, ErrInvalidRecordType)

	expectedErrMsg := "transaction record error for account 7 (type: refund, amount: 12.50): invalid transaction record type"
	if recErr.Error() != expectedErrMsg {
		t.Errorf("RecordError.Error() = %s, want %s", recErr.Error(), expectedErrMsg)
	}

	if !errors.Is(recErr, ErrInvalidRecordType) {
		t.Errorf("errors.Is(recErr, ErrInvalidRecordType) = false, want true")
	}
	if !IsValidationError(recErr) {
		t.Errorf("IsValidationError(recErr) = false, want true")
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsNotFoundError(ErrTransactionRecordNotFound) {
		t.Errorf("IsNotFoundError(ErrTransactionRecordNotFound) = false, want true")
	}
	if IsNotFoundError(ErrDuplicateUser) {
		t.Errorf("IsNotFoundError(ErrDuplicateUser) = true, want false")
	}
	if !IsAccountNotFoundError(fmt.Errorf("x: %w", ErrAccountNotFound)) {
		t.Errorf("IsAccountNotFoundError(wrapped) = false, want true")
	}
	if !IsUserNotFoundError(ErrTransactionUserNotFound) {
		t.Errorf("IsUserNotFoundError(ErrTransactionUserNotFound) = false, want true")
	}
	if IsValidationError(ErrDatabaseConnection) {
		t.Errorf("IsValidationError(ErrDatabaseConnection) = true, want false")
	}
}
