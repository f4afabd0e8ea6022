package postgres

import (
	"errors"
	"fmt"

	repo "github.com/baharkarakas/accounts-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Accounts    repo.Accounts
	Profiles    repo.Profiles
	AuditEvents repo.AuditEvents
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Accounts:    &accountsRepo{pool},
		Profiles:    &profilesRepo{pool},
		AuditEvents: &auditEventsRepo{pool},
	}
}

const (
	uniqueViolation    = "23505"
	invalidTextLiteral = "22P02"
)

// translate maps driver errors onto the repository sentinels.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repo.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w", op, repo.ErrConflict)
		case invalidTextLiteral:
			// a malformed uuid can't match any row
			return fmt.Errorf("%s: %w", op, repo.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
