package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixbank/internal/money"
)

func validPixRequest() *TransferRequest {
	return &TransferRequest{
		PayeeTaxID:          "12345678901",
		PayeeName:           "Maria Souza",
		Destination:         PixDestination{Key: "maria@example.com"},
		AmountDisplay:       "R$ 100,00",
		ValueDate:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		SecondaryCredential: "123456",
	}
}

func validWireRequest() *TransferRequest {
	req := validPixRequest()
	req.Destination = WireDestination{Bank: "001", Branch: "1234", Account: "56789-0"}
	return req
}

func TestTransferRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TransferRequest)
		wantErr error
	}{
		{"valid pix request", func(r *TransferRequest) {}, nil},
		{"missing destination", func(r *TransferRequest) { r.Destination = nil }, ErrMissingDestination},
		{"pix without key", func(r *TransferRequest) { r.Destination = PixDestination{} }, ErrMissingPixKey},
		{"ted without routing", func(r *TransferRequest) { r.Destination = WireDestination{Bank: "001"} }, ErrMissingBankRouting},
		{"missing credential", func(r *TransferRequest) { r.SecondaryCredential = "" }, ErrMissingCredential},
		{"missing value date", func(r *TransferRequest) { r.ValueDate = time.Time{} }, ErrMissingValueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPixRequest()
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransferRequestRecordChannelFields(t *testing.T) {
	owner := uuid.New()

	pix, err := validPixRequest().Record(owner)
	require.NoError(t, err)
	assert.Equal(t, ChannelPix, pix.Channel)
	assert.Equal(t, "maria@example.com", pix.PixKey)
	assert.Empty(t, pix.Bank)
	assert.Empty(t, pix.Branch)
	assert.Empty(t, pix.Account)
	assert.Equal(t, money.FromCents(10000), pix.Amount)

	wire, err := validWireRequest().Record(owner)
	require.NoError(t, err)
	assert.Equal(t, ChannelTed, wire.Channel)
	assert.Empty(t, wire.PixKey)
	assert.Equal(t, "001", wire.Bank)
	assert.Equal(t, "1234", wire.Branch)
	assert.Equal(t, "56789-0", wire.Account)
}

func TestTransferRequestRecordBadAmount(t *testing.T) {
	req := validPixRequest()
	req.AmountDisplay = "abc"
	_, err := req.Record(uuid.New())
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestRecordJSONOmitsInactiveChannelFields(t *testing.T) {
	rec, err := validPixRequest().Record(uuid.New())
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Contains(t, payload, "pix_key")
	assert.NotContains(t, payload, "bank")
	assert.NotContains(t, payload, "agency")
	assert.NotContains(t, payload, "account")
}

func TestDestinationDescribe(t *testing.T) {
	assert.Equal(t, "chave@pix.br", PixDestination{Key: "chave@pix.br"}.Describe())
	assert.Equal(t, "001 ag 1234 cc 56789-0",
		WireDestination{Bank: "001", Branch: "1234", Account: "56789-0"}.Describe())
}
