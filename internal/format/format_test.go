package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "thousands-separator", amount: 45000, want: "$45,000.00"},
		{name: "large-with-cents", amount: 98765.4321, want: "$98,765.43"},
		{name: "millions", amount: 1234567.5, want: "$1,234,567.50"},
		{name: "exactly-one", amount: 1, want: "$1.00"},
		{name: "below-thousand", amount: 512.25, want: "$512.25"},
		{name: "sub-dollar", amount: 0.5, want: "$0.500000"},
		{name: "sub-cent", amount: 0.00001234, want: "$0.000012"},
		// 0.0000005 is stored as 4.99999...e-7 and rounds down.
		{name: "half-micro-rounds-down", amount: 0.0000005, want: "$0.000000"},
		{name: "above-half-micro-rounds-up", amount: 0.0000006, want: "$0.000001"},
		{name: "zero", amount: 0, want: "$0.000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatPrice(tt.amount))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "rising", amount: 3.2, want: "📈 +3.20%"},
		{name: "falling", amount: -1.5, want: "📉 -1.50%"},
		{name: "zero-is-falling-unsigned", amount: 0, want: "📉 0.00%"},
		{name: "tiny-positive", amount: 0.004, want: "📈 +0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatPercentage(tt.amount))
		})
	}
}

func TestFormatLargeNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", FormatLargeNumber(0))
	assert.Equal(t, "$2.35T", FormatLargeNumber(2.35e12))
	assert.Equal(t, "$880.12B", FormatLargeNumber(880.12e9))
	assert.Equal(t, "$12.50M", FormatLargeNumber(12.5e6))
	assert.Equal(t, "$950,000.00", FormatLargeNumber(950000))
}

func TestFormatRank(t *testing.T) {
	t.Parallel()

	rank := 7
	zero := 0
	assert.Equal(t, "#7", FormatRank(&rank))
	assert.Equal(t, "N/A", FormatRank(&zero))
	assert.Equal(t, "N/A", FormatRank(nil))
}
