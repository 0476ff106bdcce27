package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts workflow events. A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsCreated       prometheus.Counter
	RequestsConfirmed     prometheus.Counter
	TeamAssignments       *prometheus.CounterVec
	TransactionsCreated   *prometheus.CounterVec
	TransactionsConfirmed prometheus.Counter
	TransactionsRejected  prometheus.Counter
}

// New registers all counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "cargofunds_requests_created_total",
			Help: "Total number of requests created",
		}),
		RequestsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "cargofunds_requests_confirmed_total",
			Help: "Total number of requests moved to CONFIRMED",
		}),
		TeamAssignments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cargofunds_team_assignments_total",
			Help: "Team assignment changes by role and action",
		}, []string{"role", "action"}),
		TransactionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cargofunds_transactions_created_total",
			Help: "Total number of transactions created by type",
		}, []string{"type"}),
		TransactionsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "cargofunds_transactions_confirmed_total",
			Help: "Total number of transactions confirmed",
		}),
		TransactionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "cargofunds_transactions_rejected_total",
			Help: "Total number of transactions rejected",
		}),
	}
}

func (m *Metrics) IncrementRequestCreated() {
	if m == nil {
		return
	}
	m.RequestsCreated.Inc()
}

func (m *Metrics) IncrementRequestConfirmed() {
	if m == nil {
		return
	}
	m.RequestsConfirmed.Inc()
}

// IncrementTeamAssignment records an assign or unassign for a driver or transporter.
func (m *Metrics) IncrementTeamAssignment(role, action string) {
	if m == nil {
		return
	}
	m.TeamAssignments.WithLabelValues(role, action).Inc()
}

func (m *Metrics) IncrementTransactionCreated(txnType string) {
	if m == nil {
		return
	}
	m.TransactionsCreated.WithLabelValues(txnType).Inc()
}

func (m *Metrics) IncrementTransactionConfirmed() {
	if m == nil {
		return
	}
	m.TransactionsConfirmed.Inc()
}

func (m *Metrics) IncrementTransactionRejected() {
	if m == nil {
		return
	}
	m.TransactionsRejected.Inc()
}
