package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pixbank/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction record
func (r *transactionRepository) Create(record *models.TransactionRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by its protocol id
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.TransactionRecord, error) {
	record := &models.TransactionRecord{ID: id}
	if err := r.db.First(record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return record, nil
}

// GetByUserID retrieves all transactions of an account, newest value
// date first. The client applies its own filtering and sorting on top.
func (r *transactionRepository) GetByUserID(userID uuid.UUID) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := r.db.Where("user_id = ?", userID).
		Order("value_date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return records, nil
}

// GetByUserIDPaged retrieves transactions for an account with pagination
func (r *transactionRepository) GetByUserIDPaged(userID uuid.UUID, offset, limit int) ([]models.TransactionRecord, int64, error) {
	var records []models.TransactionRecord
	var total int64

	if err := r.db.Model(&models.TransactionRecord{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("value_date DESC").
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return records, total, nil
}
