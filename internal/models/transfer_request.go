package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"pixbank/internal/money"
)

var (
	ErrMissingDestination = errors.New("transfer destination is required")
	ErrMissingCredential  = errors.New("transaction password is required")
	ErrMissingValueDate   = errors.New("value date is required")
)

// Destination is the channel-specific half of a transfer request. Exactly
// one concrete destination type exists per channel, so a request can never
// carry a PIX key and bank routing fields at the same time.
type Destination interface {
	Channel() string
	Describe() string
	validate() error
}

// PixDestination targets an instant transfer at a PIX key.
type PixDestination struct {
	Key string `json:"pix_key" validate:"required,pix_key"`
}

func (d PixDestination) Channel() string  { return ChannelPix }
func (d PixDestination) Describe() string { return d.Key }

func (d PixDestination) validate() error {
	if d.Key == "" {
		return ErrMissingPixKey
	}
	return nil
}

// WireDestination targets a TED transfer at a bank routing triple.
type WireDestination struct {
	Bank    string `json:"bank" validate:"required"`
	Branch  string `json:"agency" validate:"required"`
	Account string `json:"account" validate:"required"`
}

func (d WireDestination) Channel() string { return ChannelTed }

func (d WireDestination) Describe() string {
	return d.Bank + " ag " + d.Branch + " cc " + d.Account
}

func (d WireDestination) validate() error {
	if d.Bank == "" || d.Branch == "" || d.Account == "" {
		return ErrMissingBankRouting
	}
	return nil
}

// TransferRequest is built from the transfer form when the user submits
// and is consumed exactly once by the transfer workflow; it is never
// persisted. AmountDisplay carries the live formatted text of the amount
// field; the exact numeric value is derived from it at submission time.
type TransferRequest struct {
	PayeeTaxID          string      `json:"cpf_cnpj" validate:"required,cpf_cnpj"`
	PayeeName           string      `json:"name" validate:"required,max=100"`
	Destination         Destination `json:"-"`
	AmountDisplay       string      `json:"amount"`
	ValueDate           time.Time   `json:"date"`
	SecondaryCredential string      `json:"-"`
}

// Validate checks the request's form-level completeness. Amount positivity
// and the credential check are the authorizer's concern, not Validate's.
func (r *TransferRequest) Validate() error {
	if r.PayeeTaxID == "" {
		return errors.New("payee tax id is required")
	}
	if r.PayeeName == "" {
		return errors.New("payee name is required")
	}
	if r.Destination == nil {
		return ErrMissingDestination
	}
	if err := r.Destination.validate(); err != nil {
		return err
	}
	if r.ValueDate.IsZero() {
		return ErrMissingValueDate
	}
	if r.SecondaryCredential == "" {
		return ErrMissingCredential
	}
	return nil
}

// Amount parses the formatted display value into its exact amount.
func (r *TransferRequest) Amount() (money.Amount, error) {
	return money.ParseDisplay(r.AmountDisplay)
}

// Record materializes the request into the transaction payload sent to
// the backend. Only the active channel's destination fields are set.
func (r *TransferRequest) Record(ownerID uuid.UUID) (*TransactionRecord, error) {
	amount, err := r.Amount()
	if err != nil {
		return nil, err
	}

	rec := &TransactionRecord{
		UserID:     ownerID,
		Channel:    r.Destination.Channel(),
		PayeeTaxID: r.PayeeTaxID,
		PayeeName:  r.PayeeName,
		Amount:     amount,
		ValueDate:  r.ValueDate,
	}

	switch d := r.Destination.(type) {
	case PixDestination:
		rec.PixKey = d.Key
	case WireDestination:
		rec.Bank = d.Bank
		rec.Branch = d.Branch
		rec.Account = d.Account
	}

	return rec, nil
}
