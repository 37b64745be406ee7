package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pixbank/internal/dto"
	apperrors "pixbank/internal/errors"
	"pixbank/internal/repositories"
)

// TransactionHandler persists and lists transfers.
type TransactionHandler struct {
	transactions repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactions repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// CreateTransaction persists a submitted transfer and returns the record
// with its store-assigned protocol id.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if !req.Amount.IsPositive() {
		return SendError(c, apperrors.TransferInvalidAmount)
	}

	record := req.Record()
	if err := record.Validate(); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage(err.Error()))
	}

	if err := h.transactions.Create(record); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

// ListTransactions returns the transactions of the account named by the
// userId query parameter, newest value date first.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	rawUserID := c.QueryParam("userId")
	if rawUserID == "" {
		return SendError(c, apperrors.ValidationRequiredField, apperrors.WithDetails("userId query parameter is required"))
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid userId"))
	}

	records, err := h.transactions.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, records)
}
