package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pixbank/internal/dto"
	apperrors "pixbank/internal/errors"
	"pixbank/internal/repositories"
)

// UserHandler serves account state: the lookup the client's authorizer
// depends on, and the balance patch that ends a confirmed transfer.
type UserHandler struct {
	accounts repositories.AccountRepositoryInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(accounts repositories.AccountRepositoryInterface) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// GetUser returns the stored account, including the transaction password
// the client compares locally.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid user id"))
	}

	account, err := h.accounts.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apperrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// UpdateUser applies a partial update. The balance is stored exactly as
// sent; the store does not recompute or clamp it.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid user id"))
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.IsEmpty() {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("No fields to update"))
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.TransactionPassword != nil {
		fields["transaction_password"] = *req.TransactionPassword
	}
	if req.Balance != nil {
		fields["balance"] = *req.Balance
	}

	if err := h.accounts.UpdateFields(id, fields); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apperrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	account, err := h.accounts.GetByID(id)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}
