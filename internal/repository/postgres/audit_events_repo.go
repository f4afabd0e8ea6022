package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditEventsRepo struct{ pool *pgxpool.Pool }

func (r *auditEventsRepo) Create(ctx context.Context, e models.AuditEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	var details []byte
	if e.Details != nil {
		b, err := json.Marshal(e.Details)
		if err != nil {
			return fmt.Errorf("marshal audit details: %w", err)
		}
		details = b
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_events(id, account_id, action, details, success, ip_address, user_agent, created_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.AccountID, e.Action, details, e.Success, e.IPAddress, e.UserAgent, e.CreatedAt,
	)
	return translate("create audit event", err)
}

func (r *auditEventsRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.AuditEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, action, details, success, ip_address, user_agent, created_at
		   FROM audit_events
		  WHERE account_id=$1
		  ORDER BY created_at DESC, id DESC
		  LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, translate("list audit events", err)
	}
	defer rows.Close()

	out := make([]models.AuditEvent, 0, limit)
	for rows.Next() {
		var (
			e   models.AuditEvent
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Action, &raw, &e.Success, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, translate("scan audit event", err)
		}
		if e.Details, err = models.DecodeAuditDetail(e.Action, raw); err != nil {
			return nil, fmt.Errorf("decode audit event %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, translate("list audit events", rows.Err())
}

func (r *auditEventsRepo) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM audit_events WHERE account_id=$1`, accountID).Scan(&n)
	return n, translate("count audit events", err)
}
