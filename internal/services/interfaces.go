package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

// CredentialSource fetches the stored secondary credential of an account.
type CredentialSource interface {
	LookupCredential(ctx context.Context, accountID uuid.UUID) (string, error)
}

// TransferBackend is the slice of the banking store the transfer workflow
// needs: persist the transaction, then persist the new balance.
type TransferBackend interface {
	CredentialSource
	CreateTransaction(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error)
	UpdateBalance(ctx context.Context, accountID uuid.UUID, newBalance money.Amount) error
}

// SessionBackend is the slice of the store the auth service needs.
type SessionBackend interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (money.Amount, error)
	SetToken(token string)
}

// TransferAuthorizerInterface decides whether a transfer may proceed.
type TransferAuthorizerInterface interface {
	Authorize(ctx context.Context, request *models.TransferRequest, session *models.Session) error
}

// MetricsRecorderInterface records transfer workflow outcomes.
type MetricsRecorderInterface interface {
	RecordTransferAttempt(channel string)
	RecordTransferOutcome(channel, outcome string, duration time.Duration)
	RecordTransferAmount(amount money.Amount)
	RecordHistoryQuery(matched int)
}

// CircuitBreakerInterface guards the submission path to the backend.
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
}
