package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionReport aggregates a set of transactions. Only CONFIRMED rows count toward the amounts;
// the counters cover every row in the set.
type TransactionReport struct {
	TotalEntryAmount      decimal.Decimal
	TotalExitAmount       decimal.Decimal
	Balance               decimal.Decimal
	TotalTransactions     int
	ConfirmedTransactions int
	PendingTransactions   int
	RejectedTransactions  int
	FromDate              *time.Time
	ToDate                *time.Time
	Transactions          []Transaction
}

// NewTransactionReport folds transactions into a report. from and to are echoed as given.
func NewTransactionReport(transactions []Transaction, from, to *time.Time) TransactionReport {
	report := TransactionReport{
		TotalEntryAmount: decimal.Zero,
		TotalExitAmount:  decimal.Zero,
		FromDate:         from,
		ToDate:           to,
		Transactions:     transactions,
	}

	for _, t := range transactions {
		report.TotalTransactions++
		switch t.Status {
		case TransactionConfirmed:
			report.ConfirmedTransactions++
			if t.Type == TransactionEntry {
				report.TotalEntryAmount = report.TotalEntryAmount.Add(t.Amount)
			} else if t.Type == TransactionExit {
				report.TotalExitAmount = report.TotalExitAmount.Add(t.Amount)
			}
		case TransactionPending:
			report.PendingTransactions++
		case TransactionRejected:
			report.RejectedTransactions++
		}
	}

	report.Balance = report.TotalEntryAmount.Sub(report.TotalExitAmount)
	return report
}
