package model

import (
	"time"
)

// TransactionUser represents the database model for account owners
type TransactionUser struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionUser
func (TransactionUser) TableName() string {
	return "transaction_users"
}
