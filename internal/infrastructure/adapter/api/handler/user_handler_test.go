package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	ucmocks "github.com/amirhossein-jamali/account-service/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(uc *ucmocks.MockUserUseCase) *gin.Engine {
	h := NewUserHandler(uc, logger.NewNoopLogger())
	router := gin.New()
	router.POST("/users", h.CreateUser)
	router.GET("/users/:userId", h.GetUser)
	return router
}

func TestUserHandler_CreateUser(t *testing.T) {
	uc := ucmocks.NewMockUserUseCase(t)
	uc.EXPECT().CreateUser(mock.Anything, "alice").
		Return(&entity.TransactionUser{ID: 7, Username: "alice"}, nil)

	w := perform(t, newUserRouter(uc), http.MethodPost, "/users", map[string]any{"username": "alice"})

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "alice", body["username"])
}

func TestUserHandler_CreateUser_BlankUsername(t *testing.T) {
	uc := ucmocks.NewMockUserUseCase(t)

	w := perform(t, newUserRouter(uc), http.MethodPost, "/users", map[string]any{"username": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w).Code)
}

func TestUserHandler_CreateUser_MalformedJSON(t *testing.T) {
	uc := ucmocks.NewMockUserUseCase(t)

	w := perform(t, newUserRouter(uc), http.MethodPost, "/users", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_CreateUser_Duplicate(t *testing.T) {
	uc := ucmocks.NewMockUserUseCase(t)
	uc.EXPECT().CreateUser(mock.Anything, "alice").Return(nil, errs.ErrDuplicateUser)

	w := perform(t, newUserRouter(uc), http.MethodPost, "/users", map[string]any{"username": "alice"})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, errs.CodeDuplicateUser, resp.Code)
	assert.Equal(t, errs.ErrDuplicateUser.Error(), resp.Message)
}

func TestUserHandler_GetUser(t *testing.T) {
	uc := ucmocks.NewMockUserUseCase(t)
	user := &entity.TransactionUser{ID: 3, Username: "bob"}
	acc := entity.NewAccount(3, "Savings", 12.5)
	acc.SetID(9)
	uc.EXPECT().GetUserAccounts(mock.Anything, uint64(3)).
		Return(entity.NewUserAccounts(user, []*entity.Account{acc}), nil)

	w := perform(t, newUserRouter(uc), http.MethodGet, "/users/3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		ID       uint64           `json:"id"`
		Username string           `json:"username"`
		Accounts []map[string]any `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uint64(3), body.ID)
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, "Savings", body.Accounts[0]["accountName"])
	assert.NotContains(t, body.Accounts[0], "transactionUser")
}

func TestUserHandler_GetUser_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := ucmocks.NewMockUserUseCase(t)
		w := perform(t, newUserRouter(uc), http.MethodGet, "/users/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidUserID, decodeError(t, w).Code)
	})

	t.Run("zero id", func(t *testing.T) {
		uc := ucmocks.NewMockUserUseCase(t)
		w := perform(t, newUserRouter(uc), http.MethodGet, "/users/0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		uc := ucmocks.NewMockUserUseCase(t)
		uc.EXPECT().GetUserAccounts(mock.Anything, uint64(42)).Return(nil, errs.ErrTransactionUserNotFound)
		w := perform(t, newUserRouter(uc), http.MethodGet, "/users/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("database down hides detail", func(t *testing.T) {
		uc := ucmocks.NewMockUserUseCase(t)
		uc.EXPECT().GetUserAccounts(mock.Anything, uint64(5)).Return(nil, errs.ErrDatabaseConnection)
		w := perform(t, newUserRouter(uc), http.MethodGet, "/users/5", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w).Message)
	})
}
