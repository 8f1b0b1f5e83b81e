package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAED(t *testing.T) {
	assert.Equal(t, "AED 0.00", FormatAED(0))
	assert.Equal(t, "AED 1.50", FormatAED(150))
	assert.Equal(t, "AED 11.50", FormatAED(1150))
	assert.Equal(t, "AED 12.05", FormatAED(1205))
	assert.Equal(t, "-AED 3.00", FormatAED(-300))
}

func TestParseAED(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"AED 1.50", 150},
		{"AED 11.50", 1150},
		{"11.5", 1150},
		{"20", 2000},
		{"AED 0.00", 0},
		{"-AED 3.00", -300},
	}
	for _, tt := range tests {
		got, err := ParseAED(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAED("AED x.y")
	assert.Error(t, err)
}
