package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pixbank/internal/money"
)

// Transfer channels. TED is the traditional bank-routing rail, PIX the
// instant key-based rail.
const (
	ChannelPix = "PIX"
	ChannelTed = "TED"
)

var (
	ErrInvalidChannel           = errors.New("invalid transfer channel")
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")
	ErrMissingPixKey            = errors.New("pix key is required for PIX transactions")
	ErrMissingBankRouting       = errors.New("bank, branch and account are required for TED transactions")
)

// IsValidChannel reports whether ch names a known transfer channel.
func IsValidChannel(ch string) bool {
	return ch == ChannelPix || ch == ChannelTed
}

// TransactionRecord is a persisted transfer. The backend assigns the id
// (the user-facing protocol number) on creation; records are immutable
// afterward. Channel-specific destination fields are populated only for
// the record's own channel.
type TransactionRecord struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Channel    string       `gorm:"type:varchar(10);not null" json:"type"`
	PayeeTaxID string       `gorm:"type:varchar(20);not null" json:"cpf_cnpj"`
	PayeeName  string       `gorm:"type:varchar(100);not null" json:"name"`
	Bank       string       `gorm:"type:varchar(100)" json:"bank,omitempty"`
	Branch     string       `gorm:"type:varchar(20)" json:"agency,omitempty"`
	Account    string       `gorm:"type:varchar(30)" json:"account,omitempty"`
	PixKey     string       `gorm:"type:varchar(140)" json:"pix_key,omitempty"`
	Amount     money.Amount `gorm:"type:decimal(15,2);not null" json:"amount"`
	ValueDate  time.Time    `gorm:"not null;index" json:"date"`
	CreatedAt  time.Time    `gorm:"not null;index" json:"created_at"`

	Owner Account `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns the protocol id and creation time and validates.
func (t *TransactionRecord) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t.Validate()
}

// Validate checks channel, amount and the channel-conditional fields.
func (t *TransactionRecord) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidChannel(t.Channel) {
		return ErrInvalidChannel
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidTransactionAmount
	}
	if t.PayeeName == "" {
		return errors.New("payee name is required")
	}
	if t.ValueDate.IsZero() {
		return errors.New("value date is required")
	}

	switch t.Channel {
	case ChannelPix:
		if t.PixKey == "" {
			return ErrMissingPixKey
		}
	case ChannelTed:
		if t.Bank == "" || t.Branch == "" || t.Account == "" {
			return ErrMissingBankRouting
		}
	}

	return nil
}

// DestinationDescriptor renders the channel-specific destination for
// display: the PIX key, or the bank routing triple for TED.
func (t *TransactionRecord) DestinationDescriptor() string {
	if t.Channel == ChannelPix {
		return t.PixKey
	}
	return fmt.Sprintf("%s ag %s cc %s", t.Bank, t.Branch, t.Account)
}
