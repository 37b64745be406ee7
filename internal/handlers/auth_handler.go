package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pixbank/internal/dto"
	apperrors "pixbank/internal/errors"
	"pixbank/internal/models"
	"pixbank/internal/repositories"
	"pixbank/internal/services"
)

// defaultTransactionPassword is seeded when registration omits one, so a
// fresh demo account can authorize transfers immediately.
const defaultTransactionPassword = "123456"

// AuthHandler handles registration and login.
type AuthHandler struct {
	accounts  repositories.AccountRepositoryInterface
	passwords *services.PasswordService
	tokens    *services.TokenService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(accounts repositories.AccountRepositoryInterface, passwords *services.PasswordService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register creates a demo account credited with the starting balance and
// returns its session payload.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	hash, err := h.passwords.HashPassword(req.Password)
	if err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	}

	transactionPassword := req.TransactionPassword
	if transactionPassword == "" {
		transactionPassword = defaultTransactionPassword
	}

	account := &models.Account{
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        hash,
		TransactionPassword: transactionPassword,
		Balance:             models.StartingBalance,
	}

	if err := h.accounts.Create(account); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return SendError(c, apperrors.UserAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	token, _, err := h.tokens.GenerateToken(account)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SessionResponse{Token: token, User: account})
}

// Login authenticates an account and returns its session payload.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.accounts.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			// indistinguishable from a wrong password
			return SendError(c, apperrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	if !h.passwords.ComparePassword(req.Password, account.PasswordHash) {
		return SendError(c, apperrors.AuthInvalidCredentials)
	}

	token, _, err := h.tokens.GenerateToken(account)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{Token: token, User: account})
}
