package model

import (
	"time"
)

// TransactionRecord represents the database model for ledger entries
type TransactionRecord struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID   uint64    `gorm:"not null;index"`
	Type        string    `gorm:"size:20;not null"`
	Amount      float64   `gorm:"not null"`
	Description string    `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionRecord
func (TransactionRecord) TableName() string {
	return "transaction_records"
}
