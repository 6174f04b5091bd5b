// Package ledger aggregates venue transactions into a running balance,
// per-category daily totals and end-of-day reports.
package ledger

import (
	"log/slog"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/Veraticus/venue-sim/internal/model"
)

// Ledger is the money state of a single venue. It is not safe for
// concurrent use; each simulation unit owns its own ledger.
type Ledger struct {
	incomeBySource     map[string]float64
	expensesByCategory map[string]float64
	report             *model.DailyReport
	logger             *slog.Logger
	history            []model.Transaction
	daily              []model.Transaction
	observers          observers
	balance            float64
	dailyIncome        float64
	dailyExpenses      float64
}

// New creates an empty ledger. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		incomeBySource:     make(map[string]float64),
		expensesByCategory: make(map[string]float64),
		logger:             logger.With("component", "ledger"),
	}
}

// Submit applies a transaction. Every category and amount is accepted;
// an amount of exactly zero is booked as an expense of zero.
func (l *Ledger) Submit(txn model.Transaction) {
	l.history = append(l.history, txn)
	l.daily = append(l.daily, txn)
	l.balance += txn.Amount

	if txn.IsIncome() {
		l.dailyIncome += txn.Amount
		l.incomeBySource[txn.Category] += txn.Amount
	} else {
		spent := math.Abs(txn.Amount)
		l.dailyExpenses += spent
		l.expensesByCategory[txn.Category] += spent
	}

	l.logger.Debug("transaction applied",
		"id", txn.ID,
		"category", txn.Category,
		"amount", txn.Amount,
		"balance", l.balance)

	l.observers.balanceChanged(l.balance)
	l.observers.transactionProcessed(txn)
}

// AddIncome books amount as income regardless of its sign.
func (l *Ledger) AddIncome(at time.Time, amount float64, source, description string) model.Transaction {
	txn := model.NewTransaction(at, math.Abs(amount), source, description)
	l.Submit(txn)
	return txn
}

// AddExpense books amount as an expense regardless of its sign.
func (l *Ledger) AddExpense(at time.Time, amount float64, category, description string) model.Transaction {
	txn := model.NewTransaction(at, -math.Abs(amount), category, description)
	l.Submit(txn)
	return txn
}

// CloseDay freezes the current daily state into a report and resets the
// daily counters. Closing the same day twice overwrites the report.
func (l *Ledger) CloseDay(day int) *model.DailyReport {
	l.report = model.NewDailyReport(day,
		l.dailyIncome,
		l.dailyExpenses,
		l.incomeBySource,
		l.expensesByCategory,
		l.daily)

	l.logger.Info("day closed",
		"day", day,
		"income", l.report.TotalIncome,
		"expenses", l.report.TotalExpenses,
		"profit", l.report.Profit,
		"transactions", l.report.TransactionCount())

	l.dailyIncome = 0
	l.dailyExpenses = 0
	l.incomeBySource = make(map[string]float64)
	l.expensesByCategory = make(map[string]float64)
	l.daily = nil

	l.observers.reportReady()
	return l.report
}

// Balance returns the running sum of every transaction ever submitted.
func (l *Ledger) Balance() float64 {
	return l.balance
}

// DailyIncome returns income booked since the last close.
func (l *Ledger) DailyIncome() float64 {
	return l.dailyIncome
}

// DailyExpenses returns expenses booked since the last close, as a positive value.
func (l *Ledger) DailyExpenses() float64 {
	return l.dailyExpenses
}

// IncomeBySource returns a copy of today's income per category.
func (l *Ledger) IncomeBySource() map[string]float64 {
	return maps.Clone(l.incomeBySource)
}

// ExpensesByCategory returns a copy of today's expenses per category.
func (l *Ledger) ExpensesByCategory() map[string]float64 {
	return maps.Clone(l.expensesByCategory)
}

// History returns a copy of every transaction ever submitted.
func (l *Ledger) History() []model.Transaction {
	return slices.Clone(l.history)
}

// DailyTransactions returns a copy of the transactions since the last close.
func (l *Ledger) DailyTransactions() []model.Transaction {
	return slices.Clone(l.daily)
}

// Report returns the most recent daily report, or false before the first close.
func (l *Ledger) Report() (*model.DailyReport, bool) {
	return l.report, l.report != nil
}

// ReportSnapshot returns the serializable projection of the current report.
func (l *Ledger) ReportSnapshot() (model.ReportSnapshot, bool) {
	if l.report == nil {
		return model.ReportSnapshot{}, false
	}
	return l.report.Snapshot(), true
}
