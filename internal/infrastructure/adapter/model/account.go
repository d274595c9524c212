package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	AccountName       string    `gorm:"size:255;not null"`
	Balance           float64   `gorm:"not null"`
	TransactionUserID uint64    `gorm:"column:transaction_user_id;not null;index"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`

	// Define relationships
	TransactionUser    *TransactionUser    `gorm:"foreignKey:TransactionUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	TransactionRecords []TransactionRecord `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
