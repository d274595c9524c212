package dto

import (
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

// CreateAccountRequest is the body of POST /users/:userId/accounts.
// A missing balance opens the account at zero.
type CreateAccountRequest struct {
	AccountName string   `json:"accountName" binding:"required,notblank,max=255"`
	Balance     *float64 `json:"balance"`
}

// InitialBalance returns the requested balance or zero
func (r CreateAccountRequest) InitialBalance() float64 {
	if r.Balance == nil {
		return 0
	}
	return *r.Balance
}

// UpdateAccountRequest is the body of PATCH /accounts/:accountId
type UpdateAccountRequest struct {
	AccountName *string  `json:"accountName" binding:"omitempty,max=255"`
	Balance     *float64 `json:"balance"`
}

// ToUpdate converts the request into the use case's partial update
func (r UpdateAccountRequest) ToUpdate() usecase.AccountUpdate {
	return usecase.AccountUpdate{
		AccountName: r.AccountName,
		Balance:     r.Balance,
	}
}
