package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pixbank/internal/money"
)

// StartingBalance is credited to every newly registered account.
var StartingBalance = money.FromCents(1000000) // R$ 10.000,00

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Account is a demo bank account. The balance is the single source of
// truth for what the client may display and is only ever rewritten
// through the balance-update endpoint at the end of a confirmed transfer.
//
// TransactionPassword is the secondary credential required to authorize a
// transfer. It is stored and compared in plaintext; this is a demo
// compatibility choice, not a security model.
type Account struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name                string       `gorm:"type:varchar(100);not null" json:"name"`
	Email               string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string       `gorm:"type:varchar(255);not null" json:"-"`
	TransactionPassword string       `gorm:"type:varchar(100)" json:"transaction_password,omitempty"`
	Balance             money.Amount `gorm:"type:decimal(15,2);not null" json:"balance"`
	CreatedAt           time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time    `gorm:"not null" json:"updated_at"`

	Transactions []TransactionRecord `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns the id and timestamps and validates the account.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate refreshes the updated timestamp. Map-based updates (the
// balance patch) skip struct validation because the receiver is empty.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate checks the account fields.
func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(a.Email) {
		return errors.New("invalid email format")
	}
	if a.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	return nil
}
