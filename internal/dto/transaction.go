package dto

import (
	"time"

	"github.com/google/uuid"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

// CreateTransactionRequest is the POST body for a transfer submission.
// Channel-specific destination fields follow the record's own rules: a
// PIX transfer carries pix_key, a TED transfer the bank routing triple.
type CreateTransactionRequest struct {
	UserID     uuid.UUID    `json:"user_id" validate:"required"`
	Channel    string       `json:"type" validate:"required,channel"`
	PayeeTaxID string       `json:"cpf_cnpj" validate:"required,cpf_cnpj"`
	PayeeName  string       `json:"name" validate:"required,max=100"`
	Bank       string       `json:"bank,omitempty"`
	Branch     string       `json:"agency,omitempty"`
	Account    string       `json:"account,omitempty"`
	PixKey     string       `json:"pix_key,omitempty" validate:"omitempty,pix_key"`
	Amount     money.Amount `json:"amount"`
	ValueDate  time.Time    `json:"date" validate:"required"`
}

// Record converts the request into the persistence model.
func (r *CreateTransactionRequest) Record() *models.TransactionRecord {
	return &models.TransactionRecord{
		UserID:     r.UserID,
		Channel:    r.Channel,
		PayeeTaxID: r.PayeeTaxID,
		PayeeName:  r.PayeeName,
		Bank:       r.Bank,
		Branch:     r.Branch,
		Account:    r.Account,
		PixKey:     r.PixKey,
		Amount:     r.Amount,
		ValueDate:  r.ValueDate,
	}
}
