// Package audit appends security events on behalf of the account services.
//
// Recording is best-effort: a failed write is logged and counted but never
// surfaces to the operation that triggered it.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/metrics"
	"github.com/baharkarakas/accounts-backend/internal/models"
	repo "github.com/baharkarakas/accounts-backend/internal/repository"
	"github.com/baharkarakas/accounts-backend/internal/worker"
)

const writeTimeout = 5 * time.Second

type Logger struct {
	store repo.AuditEvents
	pool  *worker.Pool
	log   *slog.Logger
	now   func() time.Time
}

type Option func(*Logger)

// WithPool makes Record hand writes to the worker pool instead of writing inline.
func WithPool(p *worker.Pool) Option { return func(l *Logger) { l.pool = p } }

func WithClock(now func() time.Time) Option { return func(l *Logger) { l.now = now } }

func NewLogger(store repo.AuditEvents, log *slog.Logger, opts ...Option) *Logger {
	if log == nil {
		log = slog.Default()
	}
	l := &Logger{store: store, log: log, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Record appends one event for accountID. It never fails the caller.
func (l *Logger) Record(ctx context.Context, accountID string, detail models.AuditDetail, success bool, client models.ClientInfo) {
	e := models.AuditEvent{
		AccountID: accountID,
		Action:    detail.Action(),
		Details:   detail,
		Success:   success,
		IPAddress: orUnknown(client.Address),
		UserAgent: orUnknown(client.Agent),
		CreatedAt: l.now().UTC(),
	}

	if l.pool != nil {
		// detach from the request so a finished response doesn't cancel the write
		bg := context.WithoutCancel(ctx)
		if l.pool.TrySubmit(func() { l.write(bg, e) }) {
			return
		}
		l.log.Warn("audit queue full, writing inline", "action", e.Action)
	}
	l.write(ctx, e)
}

func (l *Logger) write(ctx context.Context, e models.AuditEvent) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := l.store.Create(ctx, e); err != nil {
		metrics.AuditWriteFailures.Inc()
		l.log.Error("audit write failed", "action", e.Action, "account_id", e.AccountID, "err", err)
		return
	}
	metrics.AuditWritesTotal.WithLabelValues(string(e.Action)).Inc()
}

func orUnknown(s string) string {
	if s == "" {
		return models.UnknownClient
	}
	return s
}
