package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

type mockSessionBackend struct {
	LoginFunc      func(ctx context.Context, email, password string) (*models.Session, error)
	RegisterFunc   func(ctx context.Context, name, email, password string) (*models.Session, error)
	GetBalanceFunc func(ctx context.Context, accountID uuid.UUID) (money.Amount, error)

	token    string
	tokenSet bool
}

func (m *mockSessionBackend) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return testSession(), nil
}

func (m *mockSessionBackend) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return testSession(), nil
}

func (m *mockSessionBackend) GetBalance(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, accountID)
	}
	return money.FromCents(1000000), nil
}

func (m *mockSessionBackend) SetToken(token string) {
	m.token = token
	m.tokenSet = true
}

func TestAuthServiceLogin(t *testing.T) {
	userID := uuid.New()
	backend := &mockSessionBackend{
		LoginFunc: func(ctx context.Context, email, password string) (*models.Session, error) {
			assert.Equal(t, "ana@example.com", email)
			assert.Equal(t, "secret", password)
			return models.NewSession(userID, "Ana", email, "tok", money.FromCents(1000000)), nil
		},
	}
	service := NewAuthService(backend, nil)

	session, err := service.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, money.FromCents(1000000), session.Balance())
}

func TestAuthServiceLoginFailure(t *testing.T) {
	loginErr := errors.New("invalid email or password")
	backend := &mockSessionBackend{
		LoginFunc: func(ctx context.Context, email, password string) (*models.Session, error) {
			return nil, loginErr
		},
	}
	service := NewAuthService(backend, nil)

	session, err := service.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, loginErr)
	assert.Nil(t, session)
}

func TestAuthServiceRegisterOpensSession(t *testing.T) {
	backend := &mockSessionBackend{
		RegisterFunc: func(ctx context.Context, name, email, password string) (*models.Session, error) {
			// a new account starts with the seeded balance
			return models.NewSession(uuid.New(), name, email, "tok", models.StartingBalance), nil
		},
	}
	service := NewAuthService(backend, nil)

	session, err := service.Register(context.Background(), "Ana", "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.StartingBalance, session.Balance())
	assert.Equal(t, "R$ 10.000,00", money.Format(session.Balance()))
}

func TestAuthServiceRefreshBalance(t *testing.T) {
	backend := &mockSessionBackend{
		GetBalanceFunc: func(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
			return money.FromCents(990000), nil
		},
	}
	service := NewAuthService(backend, nil)

	session := testSession()
	require.NoError(t, service.RefreshBalance(context.Background(), session))
	assert.Equal(t, money.FromCents(990000), session.Balance())
}

func TestAuthServiceRefreshBalanceFailureKeepsSession(t *testing.T) {
	backend := &mockSessionBackend{
		GetBalanceFunc: func(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
			return 0, errors.New("store unreachable")
		},
	}
	service := NewAuthService(backend, nil)

	session := testSession()
	err := service.RefreshBalance(context.Background(), session)
	assert.Error(t, err)
	assert.Equal(t, money.FromCents(1000000), session.Balance())
}

func TestAuthServiceRefreshBalanceNoSession(t *testing.T) {
	service := NewAuthService(&mockSessionBackend{}, nil)
	assert.ErrorIs(t, service.RefreshBalance(context.Background(), nil), ErrNoSession)
}

func TestAuthServiceLogoutClearsToken(t *testing.T) {
	backend := &mockSessionBackend{}
	service := NewAuthService(backend, nil)

	service.Logout(testSession())
	assert.True(t, backend.tokenSet)
	assert.Empty(t, backend.token)

	// logging out without a session is a no-op
	backend.tokenSet = false
	service.Logout(nil)
	assert.False(t, backend.tokenSet)
}
