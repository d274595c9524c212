package entity

import (
	"time"
)

// RecordType distinguishes credits from debits in the ledger
type RecordType string

// Record types
const (
	RecordDeposit    RecordType = "deposit"
	RecordWithdrawal RecordType = "withdrawal"
)

// TransactionRecord is one ledger entry owned by an Account
type TransactionRecord struct {
	ID          uint64     `json:"id"`
	AccountID   uint64     `json:"-"` // back-reference to the owning account
	Type        RecordType `json:"type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewTransactionRecord creates an unsaved record. Validation is left to the service layer.
func NewTransactionRecord(recordType RecordType, amount float64, description string, createdAt time.Time) *TransactionRecord {
	return &TransactionRecord{
		Type:        recordType,
		Amount:      amount,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// SignedAmount returns the effect of the record on the account balance
func (r *TransactionRecord) SignedAmount() float64 {
	if r.Type == RecordWithdrawal {
		return -r.Amount
	}
	return r.Amount
}

// IsValidRecordType reports whether the value names a known record type
func IsValidRecordType(recordType string) bool {
	return recordType == string(RecordDeposit) || recordType == string(RecordWithdrawal)
}
