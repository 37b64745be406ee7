package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pixbank/internal/money"
)

func validPixRecord() *TransactionRecord {
	return &TransactionRecord{
		UserID:     uuid.New(),
		Channel:    ChannelPix,
		PayeeTaxID: "12345678901",
		PayeeName:  "Maria Souza",
		PixKey:     "maria@example.com",
		Amount:     money.FromCents(10000),
		ValueDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TransactionRecord)
		wantErr error
	}{
		{"valid pix record", func(r *TransactionRecord) {}, nil},
		{"unknown channel", func(r *TransactionRecord) { r.Channel = "DOC" }, ErrInvalidChannel},
		{"zero amount", func(r *TransactionRecord) { r.Amount = money.FromCents(0) }, ErrInvalidTransactionAmount},
		{"negative amount", func(r *TransactionRecord) { r.Amount = money.FromCents(-100) }, ErrInvalidTransactionAmount},
		{"pix without key", func(r *TransactionRecord) { r.PixKey = "" }, ErrMissingPixKey},
		{
			"ted without routing",
			func(r *TransactionRecord) { r.Channel = ChannelTed; r.Bank = "001" },
			ErrMissingBankRouting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validPixRecord()
			tt.mutate(rec)
			err := rec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsValidChannel(t *testing.T) {
	assert.True(t, IsValidChannel(ChannelPix))
	assert.True(t, IsValidChannel(ChannelTed))
	assert.False(t, IsValidChannel("pix"))
	assert.False(t, IsValidChannel(""))
}

func TestDestinationDescriptor(t *testing.T) {
	rec := validPixRecord()
	assert.Equal(t, "maria@example.com", rec.DestinationDescriptor())

	rec.Channel = ChannelTed
	rec.Bank = "237"
	rec.Branch = "0450"
	rec.Account = "98765-4"
	assert.Equal(t, "237 ag 0450 cc 98765-4", rec.DestinationDescriptor())
}

func TestHistoryFilterValidate(t *testing.T) {
	pix := ChannelPix
	bad := "DOC"
	zero := 0
	seven := 7

	tests := []struct {
		name    string
		filter  HistoryFilter
		wantErr error
	}{
		{"empty filter", HistoryFilter{}, nil},
		{"full filter", HistoryFilter{Channel: &pix, RecencyDays: &seven, SortKey: SortKeyAmount, SortDir: SortDesc}, nil},
		{"bad sort key", HistoryFilter{SortKey: "payee"}, ErrInvalidSortKey},
		{"bad direction", HistoryFilter{SortKey: SortKeyDate, SortDir: "down"}, ErrInvalidSortDirection},
		{"bad channel", HistoryFilter{Channel: &bad}, ErrInvalidChannel},
		{"zero window", HistoryFilter{RecencyDays: &zero}, ErrInvalidRecencyWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSessionBalance(t *testing.T) {
	s := NewSession(uuid.New(), "Ana", "ana@example.com", "token", money.FromCents(1000000))
	assert.Equal(t, money.FromCents(1000000), s.Balance())

	s.SetBalance(money.FromCents(990000))
	assert.Equal(t, money.FromCents(990000), s.Balance())
}
