package repository

import (
	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/model"
)

func userToModel(user *entity.TransactionUser) model.TransactionUser {
	return model.TransactionUser{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func userToEntity(m *model.TransactionUser) *entity.TransactionUser {
	return &entity.TransactionUser{
		ID:        m.ID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func recordToModel(record *entity.TransactionRecord) model.TransactionRecord {
	return model.TransactionRecord{
		ID:          record.ID,
		AccountID:   record.AccountID,
		Type:        string(record.Type),
		Amount:      record.Amount,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}
}

func recordToEntity(m *model.TransactionRecord) *entity.TransactionRecord {
	return &entity.TransactionRecord{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Type:        entity.RecordType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// accountToModel converts the account and the records it holds
func accountToModel(account *entity.Account) model.Account {
	records := make([]model.TransactionRecord, 0, len(account.TransactionRecords()))
	for _, r := range account.TransactionRecords() {
		records = append(records, recordToModel(r))
	}
	return model.Account{
		ID:                 account.ID(),
		AccountName:        account.AccountName(),
		Balance:            account.Balance(),
		TransactionUserID:  account.TransactionUserID(),
		TransactionRecords: records,
	}
}

// accountToEntity converts the account and whatever records were loaded with it
func accountToEntity(m *model.Account) *entity.Account {
	account := entity.NewAccount(m.TransactionUserID, m.AccountName, m.Balance)
	account.SetID(m.ID)

	records := make([]*entity.TransactionRecord, 0, len(m.TransactionRecords))
	for i := range m.TransactionRecords {
		records = append(records, recordToEntity(&m.TransactionRecords[i]))
	}
	account.SetTransactionRecords(records)
	return account
}
