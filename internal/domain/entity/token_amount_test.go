package entity

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Zero", "0", "0", false},
		{"Trimmed", "  42 ", "42", false},
		{"Beyond 64 bits", "1000000000000000000000", "1000000000000000000000", false},
		{"Max digits", strings.Repeat("9", MaxAmountDigits), strings.Repeat("9", MaxAmountDigits), false},
		{"Empty", "", "", true},
		{"Negative", "-1", "", true},
		{"Plus sign", "+1", "", true},
		{"Decimal point", "1.5", "", true},
		{"Exponent", "1e18", "", true},
		{"Hex", "0x10", "", true},
		{"Too many digits", strings.Repeat("1", MaxAmountDigits+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTokenAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParsePositiveTokenAmount(t *testing.T) {
	_, err := ParsePositiveTokenAmount("0")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	v, err := ParsePositiveTokenAmount("1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
}

func TestFormatTokenAmount(t *testing.T) {
	assert.Equal(t, "0", FormatTokenAmount(nil))
	assert.Equal(t, "123", FormatTokenAmount(units("123")))
}
