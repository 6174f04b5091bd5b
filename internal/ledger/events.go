package ledger

import "github.com/Veraticus/venue-sim/internal/model"

// BalanceFunc observes the new balance after each transaction.
type BalanceFunc func(balance float64)

// TransactionFunc observes each transaction after it has been applied.
type TransactionFunc func(description string, amount float64)

// ReportReadyFunc is told a new daily report exists. It carries no payload;
// observers pull the report through Ledger.Report.
type ReportReadyFunc func()

type observers struct {
	balance      []BalanceFunc
	transactions []TransactionFunc
	reports      []ReportReadyFunc
}

// OnBalanceChanged registers fn to run after every submitted transaction.
func (l *Ledger) OnBalanceChanged(fn BalanceFunc) {
	l.observers.balance = append(l.observers.balance, fn)
}

// OnTransactionProcessed registers fn to run after every submitted transaction.
func (l *Ledger) OnTransactionProcessed(fn TransactionFunc) {
	l.observers.transactions = append(l.observers.transactions, fn)
}

// OnReportReady registers fn to run after every CloseDay.
func (l *Ledger) OnReportReady(fn ReportReadyFunc) {
	l.observers.reports = append(l.observers.reports, fn)
}

func (o *observers) balanceChanged(balance float64) {
	for _, fn := range o.balance {
		fn(balance)
	}
}

func (o *observers) transactionProcessed(txn model.Transaction) {
	for _, fn := range o.transactions {
		fn(txn.Description, txn.Amount)
	}
}

func (o *observers) reportReady() {
	for _, fn := range o.reports {
		fn()
	}
}
