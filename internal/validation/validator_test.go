package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taxIDSubject struct {
	TaxID string `json:"cpf_cnpj" validate:"cpf_cnpj"`
}

type pixKeySubject struct {
	Key string `json:"pix_key" validate:"pix_key"`
}

type channelSubject struct {
	Channel string `json:"type" validate:"channel"`
}

func TestCpfCnpjRule(t *testing.T) {
	v := NewValidator().GetValidate()

	tests := []struct {
		name  string
		taxID string
		valid bool
	}{
		{"bare cpf", "52998224725", true},
		{"formatted cpf", "529.982.247-25", true},
		{"bare cnpj", "45723174000110", true},
		{"formatted cnpj", "45.723.174/0001-10", true},
		{"too short", "1234567890", false},
		{"between cpf and cnpj", "123456789012", false},
		{"too long", "123456789012345", false},
		{"letters", "5299822472a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(taxIDSubject{TaxID: tt.taxID})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPixKeyRule(t *testing.T) {
	v := NewValidator().GetValidate()

	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{"email", "maria@example.com", true},
		{"phone with country code", "+5511987654321", true},
		{"bare phone", "11987654321", true},
		{"random key", "b6e7f3a2-9c41-4f8e-8d2a-1c5b9e0f7a33", true},
		{"uppercase random key", "B6E7F3A2-9C41-4F8E-8D2A-1C5B9E0F7A33", true},
		{"cpf as key", "52998224725", true},
		{"cnpj as key", "45723174000110", true},
		{"empty", "", false},
		{"plain word", "chave", false},
		{"email missing domain", "maria@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(pixKeySubject{Key: tt.key})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPixKeyRuleRejectsOverlongKeys(t *testing.T) {
	v := NewValidator().GetValidate()

	key := make([]byte, 141)
	for i := range key {
		key[i] = '1'
	}
	assert.Error(t, v.Struct(pixKeySubject{Key: string(key)}))
}

func TestChannelRule(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(channelSubject{Channel: "PIX"}))
	assert.NoError(t, v.Struct(channelSubject{Channel: "TED"}))
	assert.Error(t, v.Struct(channelSubject{Channel: "DOC"}))
	assert.Error(t, v.Struct(channelSubject{Channel: "pix"}))
	assert.Error(t, v.Struct(channelSubject{Channel: ""}))
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	v := NewValidator().GetValidate()

	err := v.Struct(taxIDSubject{TaxID: "bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpf_cnpj")
}

func TestGetValidatorReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
