package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
)

// TransactionUser owns zero or more accounts. It keeps no pointers to them;
// accounts are looked up by owner id when needed.
type TransactionUser struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTransactionUser creates an unsaved user
func NewTransactionUser(username string, timeProvider coreport.TimeProvider) *TransactionUser {
	now := timeProvider.Now()
	return &TransactionUser{
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserAccounts is the forward view of the ownership relation, built by lookup.
// Each account in it still omits its owner when serialized.
type UserAccounts struct {
	ID       uint64     `json:"id"`
	Username string     `json:"username"`
	Accounts []*Account `json:"accounts"`
}

// NewUserAccounts pairs a user with the accounts it owns
func NewUserAccounts(user *TransactionUser, accounts []*Account) *UserAccounts {
	if accounts == nil {
		accounts = []*Account{}
	}
	return &UserAccounts{
		ID:       user.ID,
		Username: user.Username,
		Accounts: accounts,
	}
}

// TotalBalance sums the balances of all accounts in the view
func (u *UserAccounts) TotalBalance() float64 {
	var total float64
	for _, a := range u.Accounts {
		total += a.Balance()
	}
	return total
}
