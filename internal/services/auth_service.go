package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pixbank/internal/models"
)

// ErrNoSession is returned when an operation requires a live session.
var ErrNoSession = errors.New("no active session")

// AuthService owns the client-side session lifecycle: a session is
// created on successful login or registration, refreshed from the store
// on demand, and destroyed on logout. Nothing else may create one, so
// authenticated state is always passed explicitly rather than held in
// package-level state.
type AuthService struct {
	backend SessionBackend
	logger  *slog.Logger
}

// NewAuthService creates the session service.
func NewAuthService(backend SessionBackend, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{backend: backend, logger: logger}
}

// Login authenticates against the backend and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	session, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("session opened", "user_id", session.UserID, "email", session.Email)
	return session, nil
}

// Register creates an account (the backend credits the starting balance)
// and opens its session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	session, err := s.backend.Register(ctx, name, email, password)
	if err != nil {
		s.logger.Warn("registration failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("account registered", "user_id", session.UserID, "email", session.Email)
	return session, nil
}

// RefreshBalance re-reads the persisted balance into the session so the
// displayed value never diverges from the store.
func (s *AuthService) RefreshBalance(ctx context.Context, session *models.Session) error {
	if session == nil {
		return ErrNoSession
	}

	balance, err := s.backend.GetBalance(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to refresh balance: %w", err)
	}

	session.SetBalance(balance)
	return nil
}

// Logout destroys the session: the backend token is cleared and the
// session value must not be reused.
func (s *AuthService) Logout(session *models.Session) {
	if session == nil {
		return
	}
	s.backend.SetToken("")
	s.logger.Info("session closed", "user_id", session.UserID)
}
