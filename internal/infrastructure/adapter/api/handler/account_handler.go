package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account and ledger HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// ListAccounts handles GET /users/:userId/accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID, ok := parseID(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	accounts, err := h.accountUseCase.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Failed to list accounts", err)
		return
	}
	if accounts == nil {
		accounts = []*entity.Account{}
	}

	c.JSON(http.StatusOK, accounts)
}

// CreateAccount handles POST /users/:userId/accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, ok := parseID(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	account, err := h.accountUseCase.CreateAccount(c.Request.Context(), userID, req.AccountName, req.InitialBalance())
	if err != nil {
		respondError(c, h.logger, "Failed to create account", err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GetAccount handles GET /accounts/:accountId
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := parseID(c, "accountId", errs.ErrInvalidAccountID)
	if !ok {
		return
	}

	account, err := h.accountUseCase.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, "Failed to get account", err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles PATCH /accounts/:accountId
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID, ok := parseID(c, "accountId", errs.ErrInvalidAccountID)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	account, err := h.accountUseCase.UpdateAccount(c.Request.Context(), accountID, req.ToUpdate())
	if err != nil {
		respondError(c, h.logger, "Failed to update account", err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount handles DELETE /accounts/:accountId
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := parseID(c, "accountId", errs.ErrInvalidAccountID)
	if !ok {
		return
	}

	if err := h.accountUseCase.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondError(c, h.logger, "Failed to delete account", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRecords handles GET /accounts/:accountId/records
func (h *AccountHandler) ListRecords(c *gin.Context) {
	accountID, ok := parseID(c, "accountId", errs.ErrInvalidAccountID)
	if !ok {
		return
	}

	records, err := h.accountUseCase.ListRecords(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, "Failed to list records", err)
		return
	}
	if records == nil {
		records = []*entity.TransactionRecord{}
	}

	c.JSON(http.StatusOK, records)
}

// RecordTransaction handles POST /accounts/:accountId/records
func (h *AccountHandler) RecordTransaction(c *gin.Context) {
	accountID, ok := parseID(c, "accountId", errs.ErrInvalidAccountID)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	account, record, err := h.accountUseCase.RecordTransaction(c.Request.Context(), accountID, req.ToRecordRequest())
	if err != nil {
		respondError(c, h.logger, "Failed to record transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordResponse{
		Record:  record,
		Account: account,
	})
}
