package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	apperrors "pixbank/internal/errors"
	"pixbank/internal/models"
)

// Workflow states. A submission walks Idle → Validating → Authorizing →
// Submitting → Debiting → Confirmed; Failed absorbs any step's failure.
type WorkflowState string

const (
	StateIdle        WorkflowState = "idle"
	StateValidating  WorkflowState = "validating"
	StateAuthorizing WorkflowState = "authorizing"
	StateSubmitting  WorkflowState = "submitting"
	StateDebiting    WorkflowState = "debiting"
	StateConfirmed   WorkflowState = "confirmed"
	StateFailed      WorkflowState = "failed"
)

// FailureReason is the user-facing failure class of an attempt. Lookup
// and submission failures collapse into the generic transaction error;
// only credential and amount problems get their own messages.
type FailureReason string

const (
	FailureNone            FailureReason = ""
	FailureInvalidRequest  FailureReason = "invalid_request"
	FailureWrongCredential FailureReason = "wrong_credential"
	FailureInvalidAmount   FailureReason = "invalid_amount"
	FailureSubmission      FailureReason = "submission_error"
)

// UserMessage returns the single human-readable message for the class.
func (r FailureReason) UserMessage() string {
	switch r {
	case FailureInvalidRequest:
		return apperrors.GetErrorMessage(apperrors.ValidationGeneral)
	case FailureWrongCredential:
		return apperrors.GetErrorMessage(apperrors.TransferWrongCredential)
	case FailureInvalidAmount:
		return apperrors.GetErrorMessage(apperrors.TransferInvalidAmount)
	case FailureSubmission:
		return apperrors.GetErrorMessage(apperrors.TransferSubmissionError)
	default:
		return ""
	}
}

// WorkflowError wraps a step failure with its user-facing class.
type WorkflowError struct {
	Reason FailureReason
	Err    error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("transfer failed (%s): %v", e.Reason, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// ErrTransferInFlight is returned when Submit is called while a previous
// attempt is still between Validating and Debiting.
var ErrTransferInFlight = errors.New("a transfer attempt is already in flight")

// ErrWorkflowClosed is returned when Submit is called after Close.
var ErrWorkflowClosed = errors.New("transfer workflow has been closed")

// TransferWorkflow orchestrates a single transfer: validate → authorize →
// submit → debit → confirm, then schedules the deferred navigation to the
// history view. One attempt runs at a time; every failure is terminal for
// its attempt and nothing is retried.
type TransferWorkflow struct {
	backend    TransferBackend
	authorizer TransferAuthorizerInterface
	breaker    CircuitBreakerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger

	navigationDelay time.Duration
	navigate        func()

	mu       sync.Mutex
	state    WorkflowState
	reason   FailureReason
	summary  *models.TransactionRecord
	navTimer *time.Timer
	closed   bool
}

// NewTransferWorkflow wires a workflow instance. navigate is invoked once,
// navigationDelay after a confirmed transfer, unless the workflow is
// closed first; it may be nil when no view owns the instance.
func NewTransferWorkflow(
	backend TransferBackend,
	authorizer TransferAuthorizerInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	navigationDelay time.Duration,
	navigate func(),
	logger *slog.Logger,
) *TransferWorkflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransferWorkflow{
		backend:         backend,
		authorizer:      authorizer,
		breaker:         breaker,
		metrics:         metrics,
		navigationDelay: navigationDelay,
		navigate:        navigate,
		logger:          logger,
		state:           StateIdle,
	}
}

// State returns the current workflow state.
func (w *TransferWorkflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// FailureReason returns the failure class of the last attempt, if any.
func (w *TransferWorkflow) FailureReason() FailureReason {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reason
}

// Summary returns the backend-assigned record of the confirmed transfer.
func (w *TransferWorkflow) Summary() *models.TransactionRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.summary
}

// Submit runs one transfer attempt end to end. On success the session
// balance is updated to the exact debited value and the persisted record
// is returned; on failure a *WorkflowError carries the user-facing class.
func (w *TransferWorkflow) Submit(ctx context.Context, session *models.Session, request *models.TransferRequest) (*models.TransactionRecord, error) {
	if err := w.begin(); err != nil {
		return nil, err
	}

	started := time.Now()
	channel := ""
	if request.Destination != nil {
		channel = request.Destination.Channel()
	}
	if w.metrics != nil {
		w.metrics.RecordTransferAttempt(channel)
	}

	record, err := w.run(ctx, session, request)
	if err != nil {
		var wfErr *WorkflowError
		if errors.As(err, &wfErr) {
			w.fail(wfErr.Reason)
			if w.metrics != nil {
				w.metrics.RecordTransferOutcome(channel, string(wfErr.Reason), time.Since(started))
			}
		}
		return nil, err
	}

	w.confirm(record)
	if w.metrics != nil {
		w.metrics.RecordTransferOutcome(channel, "confirmed", time.Since(started))
		w.metrics.RecordTransferAmount(record.Amount)
	}
	return record, nil
}

func (w *TransferWorkflow) run(ctx context.Context, session *models.Session, request *models.TransferRequest) (*models.TransactionRecord, error) {
	// Validating
	if err := request.Validate(); err != nil {
		w.logger.Warn("transfer request rejected by validation", "error", err)
		return nil, &WorkflowError{Reason: FailureInvalidRequest, Err: err}
	}

	// Authorizing
	w.setState(StateAuthorizing)
	if err := w.authorizer.Authorize(ctx, request, session); err != nil {
		switch {
		case errors.Is(err, ErrWrongCredential):
			return nil, &WorkflowError{Reason: FailureWrongCredential, Err: err}
		case errors.Is(err, ErrInvalidTransferAmount):
			return nil, &WorkflowError{Reason: FailureInvalidAmount, Err: err}
		default:
			// a failed credential lookup surfaces as the generic
			// transaction error, same as a submission failure
			w.logger.Error("authorization lookup failed", "error", err)
			return nil, &WorkflowError{Reason: FailureSubmission, Err: err}
		}
	}

	// Submitting
	w.setState(StateSubmitting)
	if w.breaker != nil && w.breaker.IsOpen() {
		w.logger.Warn("transfer rejected: backend circuit open")
		return nil, &WorkflowError{Reason: FailureSubmission, Err: ErrCircuitBreakerOpen}
	}

	record, err := request.Record(session.UserID)
	if err != nil {
		return nil, &WorkflowError{Reason: FailureInvalidAmount, Err: err}
	}

	created, err := w.backend.CreateTransaction(ctx, record)
	if err != nil {
		if w.breaker != nil {
			w.breaker.RecordFailure()
		}
		w.logger.Error("transaction submission failed", "user_id", session.UserID, "error", err)
		return nil, &WorkflowError{Reason: FailureSubmission, Err: err}
	}

	// Debiting: exact fixed-point subtraction; the result is not clamped
	// and may go negative
	w.setState(StateDebiting)
	newBalance := session.Balance().Sub(created.Amount)
	if err := w.backend.UpdateBalance(ctx, session.UserID, newBalance); err != nil {
		if w.breaker != nil {
			w.breaker.RecordFailure()
		}
		w.logger.Error("balance update failed",
			"user_id", session.UserID, "new_balance", newBalance.String(), "error", err)
		return nil, &WorkflowError{Reason: FailureSubmission, Err: err}
	}

	if w.breaker != nil {
		w.breaker.RecordSuccess()
	}

	// the in-memory balance is only rewritten once the store has
	// acknowledged the same value
	session.SetBalance(newBalance)

	w.logger.Info("transfer confirmed",
		"user_id", session.UserID,
		"protocol", created.ID,
		"channel", created.Channel,
		"amount", created.Amount.String(),
		"new_balance", newBalance.String())

	return created, nil
}

func (w *TransferWorkflow) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}

	switch w.state {
	case StateValidating, StateAuthorizing, StateSubmitting, StateDebiting:
		return ErrTransferInFlight
	}

	w.state = StateValidating
	w.reason = FailureNone
	w.summary = nil
	return nil
}

func (w *TransferWorkflow) setState(state WorkflowState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = state
}

func (w *TransferWorkflow) fail(reason FailureReason) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateFailed
	w.reason = reason
}

func (w *TransferWorkflow) confirm(record *models.TransactionRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state = StateConfirmed
	w.summary = record

	if w.navigate == nil || w.closed {
		return
	}
	if w.navTimer != nil {
		w.navTimer.Stop()
	}
	// one-shot deferred navigation to the history view
	w.navTimer = time.AfterFunc(w.navigationDelay, w.navigate)
}

// Close tears the workflow down, cancelling a pending navigation so it
// can never act on a dead view. Further submissions are rejected.
func (w *TransferWorkflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.navTimer != nil {
		w.navTimer.Stop()
		w.navTimer = nil
	}
}
