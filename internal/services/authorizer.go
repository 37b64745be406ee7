package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

var (
	// ErrWrongCredential means the supplied transaction password does not
	// match the stored one, or no credential is stored at all.
	ErrWrongCredential = errors.New("transaction password mismatch")

	// ErrInvalidTransferAmount means the amount is malformed, zero or
	// negative.
	ErrInvalidTransferAmount = errors.New("transfer amount is not positive")
)

// TransferAuthorizer decides whether a proposed transfer may proceed. It
// is purely evaluative: no state is mutated, and the stored credential is
// fetched fresh on every call rather than trusted from the session.
type TransferAuthorizer struct {
	credentials CredentialSource
	logger      *slog.Logger
}

// NewTransferAuthorizer creates a transfer authorizer.
func NewTransferAuthorizer(credentials CredentialSource, logger *slog.Logger) TransferAuthorizerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransferAuthorizer{
		credentials: credentials,
		logger:      logger,
	}
}

// Authorize validates the secondary credential and the proposed amount.
// The comparison is plaintext string equality, case-sensitive, against
// whatever the store holds; an absent stored credential rejects too.
//
// Balance sufficiency is deliberately not checked here: the workflow's
// debit step may drive the balance negative.
func (a *TransferAuthorizer) Authorize(ctx context.Context, request *models.TransferRequest, session *models.Session) error {
	stored, err := a.credentials.LookupCredential(ctx, session.UserID)
	if err != nil {
		a.logger.Error("credential lookup failed", "user_id", session.UserID, "error", err)
		return fmt.Errorf("failed to look up transaction password: %w", err)
	}

	if stored == "" || stored != request.SecondaryCredential {
		a.logger.Warn("transfer rejected: wrong transaction password", "user_id", session.UserID)
		return ErrWrongCredential
	}

	if !money.IsPositive(request.AmountDisplay) {
		a.logger.Warn("transfer rejected: non-positive amount",
			"user_id", session.UserID, "amount", request.AmountDisplay)
		return ErrInvalidTransferAmount
	}

	return nil
}
