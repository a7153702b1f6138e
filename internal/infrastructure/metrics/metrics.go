package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operation counters, incremented at the HTTP boundary once an
// operation has committed.
var (
	TransactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pocketledger_transactions_recorded_total",
			Help: "Total number of transactions recorded",
		},
		[]string{"direction"},
	)

	MoneyLent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pocketledger_loans_created_total",
			Help: "Total number of receivables created by lending",
		},
	)

	DebtsSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pocketledger_debts_settled_total",
			Help: "Total number of receivables settled",
		},
	)
)
