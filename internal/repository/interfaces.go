package repository

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

// Stores wrap these so services can map them to client-facing errors.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type Accounts interface {
	// Create inserts a new account; a taken email yields ErrConflict.
	Create(ctx context.Context, a models.Account) (models.Account, error)
	GetByID(ctx context.Context, id string) (models.Account, error)
	GetByEmail(ctx context.Context, email string) (models.Account, error)
	UpdatePasswordHash(ctx context.Context, id, hash string, at time.Time) error
	UpdateBasicInfo(ctx context.Context, id string, info models.BasicInfo, at time.Time) (models.Account, error)
	UpdatePreferences(ctx context.Context, id string, p models.Preferences, at time.Time) error
}

type Profiles interface {
	Get(ctx context.Context, accountID string) (models.Profile, error)
	UpsertProfessional(ctx context.Context, accountID string, info models.ProfessionalInfo, at time.Time) error
	UpsertSettings(ctx context.Context, accountID string, s models.ProfileSettings, at time.Time) error
}

type AuditEvents interface {
	Create(ctx context.Context, e models.AuditEvent) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.AuditEvent, error)
	CountByAccount(ctx context.Context, accountID string) (int, error)
}
