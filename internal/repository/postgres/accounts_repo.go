package postgres

import (
	"context"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accountsRepo struct{ pool *pgxpool.Pool }

const accountColumns = `id, email, name, first_name, last_name, bio, location, phone, website,
       password_hash, theme, language, timezone, created_at, updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.FirstName, &a.LastName, &a.Bio, &a.Location,
		&a.Phone, &a.Website, &a.PasswordHash, &a.Theme, &a.Language, &a.Timezone,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *accountsRepo) Create(ctx context.Context, a models.Account) (models.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO accounts(id, email, name, password_hash, theme, language, timezone)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+accountColumns,
		a.ID, a.Email, a.Name, a.PasswordHash, a.Theme, a.Language, a.Timezone,
	)
	out, err := scanAccount(row)
	return out, translate("create account", err)
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (models.Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id=$1`, id))
	return a, translate("get account", err)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email=$1`, email))
	return a, translate("get account by email", err)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, hash string, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET password_hash=$2, updated_at=$3 WHERE id=$1`, id, hash, at)
	if err != nil {
		return translate("update password", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("update password", pgx.ErrNoRows)
	}
	return nil
}

func (r *accountsRepo) UpdateBasicInfo(ctx context.Context, id string, info models.BasicInfo, at time.Time) (models.Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`UPDATE accounts
		    SET first_name=$2, last_name=$3, name=$4, bio=$5, location=$6, phone=$7, website=$8, updated_at=$9
		  WHERE id=$1
		  RETURNING `+accountColumns,
		id, info.FirstName, info.LastName, info.FullName(), info.Bio, info.Location, info.Phone, info.Website, at,
	))
	return a, translate("update basic info", err)
}

func (r *accountsRepo) UpdatePreferences(ctx context.Context, id string, p models.Preferences, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET theme=$2, language=$3, timezone=$4, updated_at=$5 WHERE id=$1`,
		id, p.Theme, p.Language, p.Timezone, at)
	if err != nil {
		return translate("update preferences", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("update preferences", pgx.ErrNoRows)
	}
	return nil
}
