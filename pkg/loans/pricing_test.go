package loans_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shaksmhd/fintech/pkg/loans"
)

func TestInterestRate(t *testing.T) {
	tests := []struct {
		name   string
		tenure int
		want   int64
	}{
		{"One Month", 1, 5},
		{"Boundary Twelve", 12, 5},
		{"Thirteen", 13, 10},
		{"Boundary Twenty Four", 24, 10},
		{"Twenty Five", 25, 15},
		{"Sixty", 60, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := loans.InterestRate(tt.tenure)
			assert.True(t, rate.Equal(decimal.NewFromInt(tt.want)),
				"tenure %d: expected %d%%, got %s", tt.tenure, tt.want, rate)
		})
	}
}

func TestTotalAmount(t *testing.T) {
	t.Run("Whole Principal", func(t *testing.T) {
		total := loans.TotalAmount(decimal.NewFromInt(1000), decimal.NewFromInt(5))
		assert.True(t, total.Equal(decimal.NewFromInt(1050)), "got %s", total)
	})

	t.Run("Fractional Principal", func(t *testing.T) {
		principal, _ := decimal.NewFromString("999.99")
		total := loans.TotalAmount(principal, decimal.NewFromInt(10))
		expected, _ := decimal.NewFromString("1099.989")
		assert.True(t, total.Equal(expected), "got %s", total)
	})

	t.Run("Flat Not Compounded", func(t *testing.T) {
		// 15% over any tenure is applied once.
		total := loans.TotalAmount(decimal.NewFromInt(200), decimal.NewFromInt(15))
		assert.True(t, total.Equal(decimal.NewFromInt(230)), "got %s", total)
	})
}
