package dto

import (
	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

// CreateRecordRequest is the body of POST /accounts/:accountId/records.
// Type and amount are checked again by the account service.
type CreateRecordRequest struct {
	Type        string  `json:"type" binding:"required,notblank"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"max=500"`
}

// ToRecordRequest converts the body into the use case request
func (r CreateRecordRequest) ToRecordRequest() usecase.RecordRequest {
	return usecase.RecordRequest{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
	}
}

// RecordResponse returns the posted record together with the updated account
type RecordResponse struct {
	Record  *entity.TransactionRecord `json:"record"`
	Account *entity.Account           `json:"account"`
}
