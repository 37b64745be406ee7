// Package backend is the REST client for the banking store. The core
// workflow reaches the store exclusively through the four collaborator
// operations (LookupCredential, CreateTransaction, UpdateBalance,
// ListTransactions); the session operations exist for login, registration
// and balance refresh.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

var (
	// ErrLookupFailed covers an unreachable or failed credential/user
	// lookup: the account could not be found or the channel errored.
	ErrLookupFailed = errors.New("user lookup failed")

	// ErrSubmissionFailed covers any non-success response to transaction
	// creation or balance update.
	ErrSubmissionFailed = errors.New("backend rejected the submission")

	// ErrInvalidLogin is returned when the backend refuses the login or
	// registration credentials.
	ErrInvalidLogin = errors.New("invalid email or password")
)

// Client talks JSON over HTTP to the banking backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

// New builds a Client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetToken installs the session token sent as the bearer credential on
// subsequent calls. An empty token clears it (logout).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type credentialsPayload struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionPayload struct {
	Token string         `json:"token"`
	User  models.Account `json:"user"`
}

type balancePayload struct {
	Balance money.Amount `json:"balance"`
}

// dataEnvelope mirrors the backend's success envelope.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Login authenticates and returns a live session. The session token is
// retained for subsequent authorized calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var payload sessionPayload
	err := c.do(ctx, http.MethodPost, "/auth/login", credentialsPayload{Email: email, Password: password}, &payload)
	if err != nil {
		if isClientStatus(err) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	return c.openSession(payload), nil
}

// Register creates a new account (the backend credits the starting
// balance) and returns its session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	var payload sessionPayload
	err := c.do(ctx, http.MethodPost, "/auth/register", credentialsPayload{Name: name, Email: email, Password: password}, &payload)
	if err != nil {
		if isClientStatus(err) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	return c.openSession(payload), nil
}

func (c *Client) openSession(payload sessionPayload) *models.Session {
	c.SetToken(payload.Token)
	return models.NewSession(payload.User.ID, payload.User.Name, payload.User.Email, payload.Token, payload.User.Balance)
}

// GetUser fetches the current stored state of an account.
func (c *Client) GetUser(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodGet, "/users/"+accountID.String(), nil, &account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	return &account, nil
}

// GetBalance fetches the persisted balance, the single source of truth
// for what the client may display.
func (c *Client) GetBalance(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
	account, err := c.GetUser(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// LookupCredential fetches the account's stored secondary credential.
// The comparison itself happens in the authorizer; a missing account or
// transport failure is ErrLookupFailed.
func (c *Client) LookupCredential(ctx context.Context, accountID uuid.UUID) (string, error) {
	account, err := c.GetUser(ctx, accountID)
	if err != nil {
		return "", err
	}
	return account.TransactionPassword, nil
}

// CreateTransaction submits a transfer for persistence. The backend
// assigns the protocol id and returns the persisted record.
func (c *Client) CreateTransaction(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	var created models.TransactionRecord
	if err := c.do(ctx, http.MethodPost, "/transactions", record, &created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	return &created, nil
}

// UpdateBalance rewrites the persisted balance of an account.
func (c *Client) UpdateBalance(ctx context.Context, accountID uuid.UUID, newBalance money.Amount) error {
	if err := c.do(ctx, http.MethodPatch, "/users/"+accountID.String(), balancePayload{Balance: newBalance}, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	return nil
}

// ListTransactions returns the account's transaction history, pre-sorted
// by the backend newest first.
func (c *Client) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	path := "/transactions?userId=" + url.QueryEscape(accountID.String())
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	return records, nil
}

// statusError distinguishes HTTP-status failures from transport failures.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.status, e.body)
}

func isClientStatus(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.status >= 400 && se.status < 500
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("backend returned error status",
			"method", method, "path", path, "status", resp.StatusCode)
		return &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		// not enveloped; decode the body directly
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
