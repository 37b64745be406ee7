package services

import (
	"log/slog"

	"pixbank/internal/backend"
	"pixbank/internal/config"
)

// BankingClient is the assembled client half: session management, the
// transfer workflow and the history engine, all talking to one store.
type BankingClient struct {
	Auth      *AuthService
	Transfers *TransferWorkflow
	History   *HistoryQueryEngine

	backend *backend.Client
}

// NewBankingClient wires the client services against the backend named
// by the configuration. navigate runs after a confirmed transfer's
// deferred navigation delay; nil disables navigation.
func NewBankingClient(cfg *config.Config, navigate func(), logger *slog.Logger) *BankingClient {
	if logger == nil {
		logger = slog.Default()
	}

	store := backend.New(cfg.Client.BackendURL, cfg.Client.RequestTimeout, logger)
	metrics := NewPrometheusMetrics()

	workflow := NewTransferWorkflow(
		store,
		NewTransferAuthorizer(store, logger),
		NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		metrics,
		cfg.Client.NavigationDelay,
		navigate,
		logger,
	)

	return &BankingClient{
		Auth:      NewAuthService(store, logger),
		Transfers: workflow,
		History:   NewHistoryQueryEngine(metrics),
		backend:   store,
	}
}

// Close cancels any pending deferred navigation.
func (c *BankingClient) Close() {
	c.Transfers.Close()
}
