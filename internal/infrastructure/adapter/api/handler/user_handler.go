package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles owner-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, h.logger, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:userId and returns the owner with its accounts
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	view, err := h.userUseCase.GetUserAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Failed to get user", err)
		return
	}

	c.JSON(http.StatusOK, view)
}
