package currency_test

import (
	"testing"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/currency"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		cents domain.Cents
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{65000, "$650.00"},
		{58000, "$580.00"},
		{123000, "$1,230.00"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-500, "-$5.00"},
		{-123050, "-$1,230.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, currency.FormatUSD(tt.cents), "cents %d", tt.cents)
	}
}
