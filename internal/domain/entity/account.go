package entity

import (
	"encoding/json"
)

// Account is a single financial account owned by one TransactionUser.
//
// The owner is held by id only and is never serialized. Records are owned by
// the account: the repository cascades save, update and delete to them.
type Account struct {
	id                 uint64
	accountName        string
	balance            float64
	transactionUserID  uint64
	transactionRecords []*TransactionRecord
}

// NewAccount creates an unsaved account for the given owner
func NewAccount(transactionUserID uint64, accountName string, balance float64) *Account {
	return &Account{
		accountName:        accountName,
		balance:            balance,
		transactionUserID:  transactionUserID,
		transactionRecords: []*TransactionRecord{},
	}
}

// ID returns the store-assigned identifier, zero until the account is saved
func (a *Account) ID() uint64 {
	return a.id
}

// SetID sets the identifier. Used by repositories after the first save.
func (a *Account) SetID(id uint64) {
	a.id = id
}

// AccountName returns the free-text label of the account
func (a *Account) AccountName() string {
	return a.accountName
}

// SetAccountName updates the account label
func (a *Account) SetAccountName(name string) {
	a.accountName = name
}

// Balance returns the current balance
func (a *Account) Balance() float64 {
	return a.balance
}

// SetBalance overwrites the balance
func (a *Account) SetBalance(balance float64) {
	a.balance = balance
}

// TransactionUserID returns the id of the owning user
func (a *Account) TransactionUserID() uint64 {
	return a.transactionUserID
}

// SetTransactionUserID reassigns the owner by id
func (a *Account) SetTransactionUserID(userID uint64) {
	a.transactionUserID = userID
}

// SetTransactionUser reassigns the owner. A nil user clears the reference.
func (a *Account) SetTransactionUser(user *TransactionUser) {
	if user == nil {
		a.transactionUserID = 0
		return
	}
	a.transactionUserID = user.ID
}

// TransactionRecords returns the records owned by the account
func (a *Account) TransactionRecords() []*TransactionRecord {
	return a.transactionRecords
}

// SetTransactionRecords replaces the owned records and binds each one to this account.
// Nil entries are dropped.
func (a *Account) SetTransactionRecords(records []*TransactionRecord) {
	kept := make([]*TransactionRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		r.AccountID = a.id
		kept = append(kept, r)
	}
	a.transactionRecords = kept
}

// AddTransactionRecord appends a record and binds it to this account. Nil is ignored.
func (a *Account) AddTransactionRecord(record *TransactionRecord) {
	if record == nil {
		return
	}
	record.AccountID = a.id
	a.transactionRecords = append(a.transactionRecords, record)
}

// ApplyRecord adds the record's signed amount to the balance and appends it.
// No floor is applied to the resulting balance. Nil is ignored.
func (a *Account) ApplyRecord(record *TransactionRecord) {
	if record == nil {
		return
	}
	a.balance += record.SignedAmount()
	a.AddTransactionRecord(record)
}

// accountJSON is the wire shape of an Account. The owner is deliberately absent.
type accountJSON struct {
	ID                 uint64               `json:"id"`
	AccountName        string               `json:"accountName"`
	Balance            float64              `json:"balance"`
	TransactionRecords []*TransactionRecord `json:"transactionRecords"`
}

// MarshalJSON implements json.Marshaler for both values and pointers
func (a Account) MarshalJSON() ([]byte, error) {
	records := a.transactionRecords
	if records == nil {
		records = []*TransactionRecord{}
	}
	return json.Marshal(accountJSON{
		ID:                 a.id,
		AccountName:        a.accountName,
		Balance:            a.balance,
		TransactionRecords: records,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The owner cannot be set from JSON.
func (a *Account) UnmarshalJSON(data []byte) error {
	var aux accountJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.id = aux.ID
	a.accountName = aux.AccountName
	a.balance = aux.Balance
	if aux.TransactionRecords == nil {
		aux.TransactionRecords = []*TransactionRecord{}
	}
	a.SetTransactionRecords(aux.TransactionRecords)
	return nil
}
