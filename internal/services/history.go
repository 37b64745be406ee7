package services

import (
	"fmt"
	"sort"
	"time"

	"pixbank/internal/models"
	"pixbank/internal/money"
)

const hoursPerDay = 24

// HistoryQueryEngine filters and sorts transaction history. Query is a
// pure function over its inputs: it never mutates the record slice it is
// given and holds no cache, so it can be re-run on every change to any
// filter control.
type HistoryQueryEngine struct {
	now     func() time.Time
	metrics MetricsRecorderInterface
}

// NewHistoryQueryEngine creates an engine evaluating recency windows
// against the real clock.
func NewHistoryQueryEngine(metrics MetricsRecorderInterface) *HistoryQueryEngine {
	return &HistoryQueryEngine{now: time.Now, metrics: metrics}
}

// NewHistoryQueryEngineAt pins the engine's clock, for tests.
func NewHistoryQueryEngineAt(now func() time.Time, metrics MetricsRecorderInterface) *HistoryQueryEngine {
	return &HistoryQueryEngine{now: now, metrics: metrics}
}

// Query applies the filter's predicates (ANDed; absent predicates impose
// no constraint) and then orders the survivors. Without a sort key the
// input order is preserved; with one, ties keep their received order —
// there is no secondary sort key.
func (e *HistoryQueryEngine) Query(records []models.TransactionRecord, filter models.HistoryFilter) ([]models.TransactionRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	bounds, err := parseAmountBounds(filter)
	if err != nil {
		return nil, err
	}

	now := e.now()
	result := make([]models.TransactionRecord, 0, len(records))
	for i := range records {
		if e.matches(&records[i], filter, bounds, now) {
			result = append(result, records[i])
		}
	}

	e.sortRecords(result, filter)

	if e.metrics != nil {
		e.metrics.RecordHistoryQuery(len(result))
	}
	return result, nil
}

type amountBounds struct {
	min *money.Amount
	max *money.Amount
}

func parseAmountBounds(filter models.HistoryFilter) (amountBounds, error) {
	var bounds amountBounds

	if filter.AmountMin != nil && *filter.AmountMin != "" {
		parsed, err := money.ParseDisplay(*filter.AmountMin)
		if err != nil {
			return bounds, fmt.Errorf("invalid minimum amount: %w", err)
		}
		bounds.min = &parsed
	}

	if filter.AmountMax != nil && *filter.AmountMax != "" {
		parsed, err := money.ParseDisplay(*filter.AmountMax)
		if err != nil {
			return bounds, fmt.Errorf("invalid maximum amount: %w", err)
		}
		bounds.max = &parsed
	}

	return bounds, nil
}

func (e *HistoryQueryEngine) matches(record *models.TransactionRecord, filter models.HistoryFilter, bounds amountBounds, now time.Time) bool {
	if filter.Channel != nil && record.Channel != *filter.Channel {
		return false
	}

	if filter.RecencyDays != nil {
		// calendar age in fractional days, not business days
		ageDays := now.Sub(record.ValueDate).Hours() / hoursPerDay
		if ageDays > float64(*filter.RecencyDays) {
			return false
		}
	}

	if filter.DateStart != nil && record.ValueDate.Before(*filter.DateStart) {
		return false
	}
	if filter.DateEnd != nil && record.ValueDate.After(*filter.DateEnd) {
		return false
	}

	if bounds.min != nil && record.Amount < *bounds.min {
		return false
	}
	if bounds.max != nil && record.Amount > *bounds.max {
		return false
	}

	return true
}

func (e *HistoryQueryEngine) sortRecords(records []models.TransactionRecord, filter models.HistoryFilter) {
	if filter.SortKey == "" {
		return
	}

	desc := filter.SortDir == models.SortDesc

	sort.SliceStable(records, func(i, j int) bool {
		var less bool
		switch filter.SortKey {
		case models.SortKeyDate:
			// numeric comparison on the timestamp, never on a formatted string
			less = records[i].ValueDate.Before(records[j].ValueDate)
		case models.SortKeyAmount:
			less = records[i].Amount < records[j].Amount
		}
		if desc {
			return !less && !equalByKey(&records[i], &records[j], filter.SortKey)
		}
		return less
	})
}

func equalByKey(a, b *models.TransactionRecord, key string) bool {
	switch key {
	case models.SortKeyDate:
		return a.ValueDate.Equal(b.ValueDate)
	case models.SortKeyAmount:
		return a.Amount == b.Amount
	default:
		return false
	}
}
