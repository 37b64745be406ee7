package repositories

import (
	"github.com/google/uuid"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	UpdateBalance(accountID uuid.UUID, balance money.Amount) error
	UpdateFields(accountID uuid.UUID, fields map[string]interface{}) error
	EmailExists(email string) (bool, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(record *models.TransactionRecord) error
	GetByID(id uuid.UUID) (*models.TransactionRecord, error)
	GetByUserID(userID uuid.UUID) ([]models.TransactionRecord, error)
	GetByUserIDPaged(userID uuid.UUID, offset, limit int) ([]models.TransactionRecord, int64, error)
}
