package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Accounts
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_registrations_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"result"}, // created|conflict|invalid
	)
	PasswordChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "password_changes_total",
			Help: "Password change attempts by outcome",
		},
		[]string{"result"}, // changed|invalid_credential|invalid|error
	)

	// Audit trail
	AuditWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_writes_total",
			Help: "Audit events written, by action",
		},
		[]string{"action"},
	)
	AuditWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_write_failures_total",
			Help: "Audit events that could not be persisted",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RegistrationsTotal)
		prometheus.MustRegister(PasswordChangesTotal)
		prometheus.MustRegister(AuditWritesTotal)
		prometheus.MustRegister(AuditWriteFailures)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
