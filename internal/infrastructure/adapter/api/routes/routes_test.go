package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/time"
	ucmocks "github.com/amirhossein-jamali/account-service/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type healthyDB struct{}

func (healthyDB) Ping(context.Context) error { return nil }

func (healthyDB) PoolMetrics() database.ConnectionPoolMetrics { return database.ConnectionPoolMetrics{} }

func newTestRouter(t *testing.T) (*gin.Engine, *ucmocks.MockUserUseCase, *ucmocks.MockAccountUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	log := logger.NewNoopLogger()
	users := ucmocks.NewMockUserUseCase(t)
	accounts := ucmocks.NewMockAccountUseCase(t)
	router, err := NewRouter(log, timeprovider.NewRealTimeProvider(), []string{"*"}, Handlers{
		Health:  handler.NewHealthHandler(healthyDB{}, log),
		User:    handler.NewUserHandler(users, log),
		Account: handler.NewAccountHandler(accounts, log),
	})
	require.NoError(t, err)
	return router, users, accounts
}

func TestRouter_MountsEndpoints(t *testing.T) {
	router, users, accounts := newTestRouter(t)

	users.EXPECT().CreateUser(mock.Anything, "carol").Return(&entity.TransactionUser{ID: 1, Username: "carol"}, nil)
	users.EXPECT().GetUserAccounts(mock.Anything, uint64(1)).
		Return(entity.NewUserAccounts(&entity.TransactionUser{ID: 1, Username: "carol"}, nil), nil)
	accounts.EXPECT().ListAccounts(mock.Anything, uint64(1)).Return([]*entity.Account{}, nil)
	accounts.EXPECT().DeleteAccount(mock.Anything, uint64(3)).Return(nil)

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/users", `{"username":"carol"}`, http.StatusCreated},
		{http.MethodGet, "/users/1", "", http.StatusOK},
		{http.MethodGet, "/users/1/accounts", "", http.StatusOK},
		{http.MethodDelete, "/accounts/3", "", http.StatusNoContent},
		{http.MethodGet, "/nowhere", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_RejectsInvalidOrigins(t *testing.T) {
	log := logger.NewNoopLogger()

	_, err := NewRouter(log, timeprovider.NewRealTimeProvider(), []string{"bank.example.com"}, Handlers{})

	assert.ErrorContains(t, err, "invalid CORS configuration")
}
