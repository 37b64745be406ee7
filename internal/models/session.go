package models

import (
	"sync"

	"github.com/google/uuid"

	"pixbank/internal/money"
)

// Session is the authenticated-user state the client threads through the
// transfer workflow and backend calls. It is created on successful login,
// destroyed on logout, and never held in package-level state.
//
// The balance has a single writer (the transfer workflow after a
// confirmed debit) but is read by display paths, so access is guarded.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Token  string

	mu      sync.RWMutex
	balance money.Amount
}

// NewSession builds a session from a successful login response.
func NewSession(userID uuid.UUID, name, email, token string, balance money.Amount) *Session {
	return &Session{
		UserID:  userID,
		Name:    name,
		Email:   email,
		Token:   token,
		balance: balance,
	}
}

// Balance returns the current in-memory balance.
func (s *Session) Balance() money.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// SetBalance overwrites the in-memory balance after the backend has
// acknowledged the same value, keeping display and store in agreement.
func (s *Session) SetBalance(balance money.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = balance
}
