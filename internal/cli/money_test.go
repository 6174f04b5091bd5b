package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		want     string
		amount   float64
	}{
		{name: "zero", amount: 0, currency: "$", want: "0 $"},
		{name: "small", amount: 300, currency: "$", want: "300 $"},
		{name: "grouped", amount: 12500, currency: "$", want: "12,500 $"},
		{name: "millions", amount: 1234567, currency: "€", want: "1,234,567 €"},
		{name: "negative", amount: -4200, currency: "$", want: "-4,200 $"},
		{name: "rounds half up", amount: 999.5, currency: "$", want: "1,000 $"},
		{name: "drops decimals", amount: 10.49, currency: "$", want: "10 $"},
		{name: "no currency", amount: 1500, currency: "", want: "1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency))
		})
	}
}
