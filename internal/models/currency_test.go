package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyMinorUnits(t *testing.T) {
	tests := []struct {
		code string
		want int32
	}{
		{"USD", 2},
		{"EUR", 2},
		{"JPY", 0},
		{"KRW", 0},
		{"BHD", 3},
		{"KWD", 3},
		{"jpy", 0}, // lookup is case-insensitive
		{"XYZ", 2}, // unknown codes use the common default
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrencyMinorUnits(tt.code))
		})
	}
}

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, IsValidCurrencyCode("USD"))
	assert.True(t, IsValidCurrencyCode("JPY"))
	assert.False(t, IsValidCurrencyCode("usd"))
	assert.False(t, IsValidCurrencyCode("US"))
	assert.False(t, IsValidCurrencyCode("USDT"))
	assert.False(t, IsValidCurrencyCode(""))
	assert.False(t, IsValidCurrencyCode("U1D"))
}
