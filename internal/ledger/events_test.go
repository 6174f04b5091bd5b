package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Observers(t *testing.T) {
	l := newTestLedger()

	var balances []float64
	var processed []string
	var amounts []float64
	reports := 0

	l.OnBalanceChanged(func(balance float64) {
		balances = append(balances, balance)
	})
	l.OnTransactionProcessed(func(description string, amount float64) {
		processed = append(processed, description)
		amounts = append(amounts, amount)
	})
	l.OnReportReady(func() {
		reports++
		report, ok := l.Report()
		require.True(t, ok)
		assert.Equal(t, 7, report.Day)
		assert.Zero(t, l.DailyIncome())
	})

	l.AddIncome(day1, 100, "Drinks", "round of shots")
	l.AddExpense(day1, 30, "Bribes", "officer")

	assert.Equal(t, []float64{100, 70}, balances)
	assert.Equal(t, []string{"round of shots", "officer"}, processed)
	assert.Equal(t, []float64{100, -30}, amounts)
	assert.Zero(t, reports)

	l.CloseDay(7)
	assert.Equal(t, 1, reports)
	assert.Len(t, balances, 2)
}

func TestLedger_ObserversRunInRegistrationOrder(t *testing.T) {
	l := newTestLedger()
	var order []int

	for i := range 3 {
		l.OnBalanceChanged(func(float64) {
			order = append(order, i)
		})
	}

	l.AddIncome(day1, 1, "Tips", "tip")
	assert.Equal(t, []int{0, 1, 2}, order)
}
