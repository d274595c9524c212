package account

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// MaxAccountNameLength matches the width of the account_name column
const MaxAccountNameLength = 255

// AccountValidator checks request shape. It does not enforce any balance floor.
type AccountValidator struct{}

// NewAccountValidator creates a new AccountValidator
func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

// ValidateAccountID rejects the zero id
func (v *AccountValidator) ValidateAccountID(accountID uint64) error {
	if accountID == 0 {
		return errs.ErrInvalidAccountID
	}
	return nil
}

// ValidateAccountName trims the name and returns it if it is usable
func (v *AccountValidator) ValidateAccountName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errs.ErrInvalidAccountName
	}
	if utf8.RuneCountInString(trimmed) > MaxAccountNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidAccountName, MaxAccountNameLength)
	}
	return trimmed, nil
}

// ValidateBalance accepts any finite value, negative included
func (v *AccountValidator) ValidateBalance(balance float64) error {
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return fmt.Errorf("%w: balance must be finite", errs.ErrInvalidAmount)
	}
	return nil
}

// ValidateRecord checks the type and amount of a ledger entry
func (v *AccountValidator) ValidateRecord(recordType string, amount float64) error {
	if !entity.IsValidRecordType(recordType) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidRecordType, recordType)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}
