package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &AccountRepository{
		db: db,
	}
}

// Create inserts a new account
func (r *AccountRepository) Create(account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	if err := r.db.Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return account, nil
}

// GetByEmail retrieves an account by its email address
func (r *AccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account

	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return &account, nil
}

// UpdateBalance overwrites the persisted balance with the value the
// client computed and sent. The stored value is authoritative afterward.
func (r *AccountRepository) UpdateBalance(accountID uuid.UUID, balance money.Amount) error {
	if accountID == uuid.Nil {
		return errors.New("account ID cannot be nil")
	}

	result := r.db.Model(&models.Account{ID: accountID}).
		Updates(map[string]interface{}{"balance": balance})
	if result.Error != nil {
		return fmt.Errorf("failed to update balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// UpdateFields updates specific fields of an account
func (r *AccountRepository) UpdateFields(accountID uuid.UUID, fields map[string]interface{}) error {
	result := r.db.Model(&models.Account{ID: accountID}).Updates(fields)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to update account fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// EmailExists reports whether an account with the email is registered
func (r *AccountRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres and sqlite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
