package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pixbank/internal/config"
	"pixbank/internal/database"
	"pixbank/internal/models"
	"pixbank/internal/repositories"
	"pixbank/internal/services"
)

// handlerEnv wires handlers against an in-memory store, the same way the
// server does against postgres.
type handlerEnv struct {
	e            *echo.Echo
	db           *database.DB
	accounts     repositories.AccountRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	passwords    *services.PasswordService
	tokens       *services.TokenService

	auth  *AuthHandler
	users *UserHandler
	txs   *TransactionHandler
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	db := database.SetupTestDB(t)

	e := echo.New()
	e.Validator = NewValidator()

	accounts := repositories.NewAccountRepository(db.DB)
	transactions := repositories.NewTransactionRepository(db.DB)
	passwords := services.NewPasswordService(bcrypt.MinCost)
	tokens := services.NewTokenService(&config.JWTConfig{
		Secret:        "handler-test-secret",
		TokenDuration: time.Hour,
		Issuer:        "pixbank-test",
	})

	return &handlerEnv{
		e:            e,
		db:           db,
		accounts:     accounts,
		transactions: transactions,
		passwords:    passwords,
		tokens:       tokens,
		auth:         NewAuthHandler(accounts, passwords, tokens),
		users:        NewUserHandler(accounts),
		txs:          NewTransactionHandler(transactions),
	}
}

// newContext builds an echo context for a JSON request. A nil body sends
// an empty request.
func (env *handlerEnv) newContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return env.e.NewContext(req, rec), rec
}

// rawContext builds an echo context around a literal request body.
func (env *handlerEnv) rawContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return env.e.NewContext(req, rec), rec
}

// registerAccount creates an account through the repository with a real
// bcrypt hash so login tests exercise the full comparison path.
func (env *handlerEnv) registerAccount(t *testing.T, email, password string) *models.Account {
	t.Helper()

	hash, err := env.passwords.HashPassword(password)
	require.NoError(t, err)

	account := &models.Account{
		Name:                "Joana Souza",
		Email:               email,
		PasswordHash:        hash,
		TransactionPassword: "123456",
		Balance:             models.StartingBalance,
	}
	require.NoError(t, env.accounts.Create(account))

	return account
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Code)
}
