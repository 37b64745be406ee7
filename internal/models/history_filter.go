package models

import (
	"errors"
	"time"
)

// Sort keys and directions accepted by the history query engine.
const (
	SortKeyDate   = "date"
	SortKeyAmount = "amount"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// RecencyWindows are the relative day-count options the history view
// offers; any positive window is accepted by the engine.
var RecencyWindows = []int{7, 15, 30, 90}

var (
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidRecencyWindow = errors.New("recency window must be positive")
)

// HistoryFilter is the ephemeral set of predicates the history view
// rebuilds from its controls on every query. Nil fields impose no
// constraint; present fields are ANDed. Amount bounds are the formatted
// display strings of the range inputs and are parsed by the query engine.
type HistoryFilter struct {
	Channel     *string
	RecencyDays *int
	DateStart   *time.Time
	DateEnd     *time.Time
	AmountMin   *string
	AmountMax   *string
	SortKey     string
	SortDir     string
}

// Validate checks the filter's enumerated fields. An empty SortKey means
// no sorting is applied and the input order is preserved.
func (f *HistoryFilter) Validate() error {
	if f.SortKey != "" && f.SortKey != SortKeyDate && f.SortKey != SortKeyAmount {
		return ErrInvalidSortKey
	}
	if f.SortDir != "" && f.SortDir != SortAsc && f.SortDir != SortDesc {
		return ErrInvalidSortDirection
	}
	if f.Channel != nil && !IsValidChannel(*f.Channel) {
		return ErrInvalidChannel
	}
	if f.RecencyDays != nil && *f.RecencyDays <= 0 {
		return ErrInvalidRecencyWindow
	}
	return nil
}
