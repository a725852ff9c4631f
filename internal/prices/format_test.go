package prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		unit  string
		want  string
	}{
		{"thousands with separator", 1234.5, "/oz", "$1,235/oz"},
		{"thousands rounds half up", 2650.5, "/oz", "$2,651/oz"},
		{"five digits", 23456.7, "/t", "$23,457/t"},
		{"hundreds no decimals", 955.4, "/oz", "$955/oz"},
		{"tens two decimals", 55.4, "", "$55.40"},
		{"small three decimals", 5.4, "", "$5.400"},
		{"copper style", 4.2875, "/lb", "$4.288/lb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price, tt.unit))
		})
	}
}

func TestFormatChange(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"positive gets plus", 2.3, "+2.3%"},
		{"negative rounds to one decimal", -1.05, "-1.1%"},
		{"zero counts as positive", 0, "+0.0%"},
		{"small positive", 0.04, "+0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatChange(tt.pct))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "12,345", groupThousands(12345))
	assert.Equal(t, "1,234,567", groupThousands(1234567))
}
