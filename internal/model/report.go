// Package model defines the core domain models used throughout the simulation.
package model

import (
	"maps"
	"slices"
)

// DailyReport is the frozen end-of-day snapshot produced by the ledger.
// Its maps and slice are private copies; it never changes after creation.
type DailyReport struct {
	incomeBySource     map[string]float64
	expensesByCategory map[string]float64
	transactions       []Transaction
	Day                int
	TotalIncome        float64
	TotalExpenses      float64
	Profit             float64
}

// NewDailyReport copies the supplied daily state into a new report.
func NewDailyReport(day int, income, expenses float64, incomeBySource, expensesByCategory map[string]float64, transactions []Transaction) *DailyReport {
	return &DailyReport{
		Day:                day,
		TotalIncome:        income,
		TotalExpenses:      expenses,
		Profit:             income - expenses,
		incomeBySource:     copyAmounts(incomeBySource),
		expensesByCategory: copyAmounts(expensesByCategory),
		transactions:       slices.Clone(transactions),
	}
}

// IncomeBySource returns a copy of the per-category income totals.
func (r *DailyReport) IncomeBySource() map[string]float64 {
	return copyAmounts(r.incomeBySource)
}

// ExpensesByCategory returns a copy of the per-category expense totals.
func (r *DailyReport) ExpensesByCategory() map[string]float64 {
	return copyAmounts(r.expensesByCategory)
}

// Transactions returns a copy of the transactions recorded during the day.
func (r *DailyReport) Transactions() []Transaction {
	return slices.Clone(r.transactions)
}

// TransactionCount returns how many transactions the day recorded.
func (r *DailyReport) TransactionCount() int {
	return len(r.transactions)
}

// Snapshot returns the serializable projection of the report.
func (r *DailyReport) Snapshot() ReportSnapshot {
	return ReportSnapshot{
		Day:                r.Day,
		TotalIncome:        r.TotalIncome,
		TotalExpenses:      r.TotalExpenses,
		Profit:             r.Profit,
		IncomeBySource:     copyAmounts(r.incomeBySource),
		ExpensesByCategory: copyAmounts(r.expensesByCategory),
		TransactionCount:   len(r.transactions),
	}
}

// ReportSnapshot is the presentation-facing view of a DailyReport.
type ReportSnapshot struct {
	IncomeBySource     map[string]float64 `json:"income_by_source"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	Day                int                `json:"day"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	Profit             float64            `json:"profit"`
	TransactionCount   int                `json:"transaction_count"`
}

// SortedCategories returns the keys of an amount map in lexical order.
func SortedCategories(amounts map[string]float64) []string {
	return slices.Sorted(maps.Keys(amounts))
}

func copyAmounts(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	maps.Copy(dst, src)
	return dst
}
