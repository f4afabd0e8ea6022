package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/api/validate"
	"github.com/baharkarakas/accounts-backend/internal/metrics"
	"github.com/baharkarakas/accounts-backend/internal/models"
	repo "github.com/baharkarakas/accounts-backend/internal/repository"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in RegisterInput) validate() validate.Errs {
	return validate.Collect(
		validate.First(
			validate.MinLen("name", in.Name, 2),
			validate.MaxLen("name", in.Name, 50),
		),
		validate.First(
			validate.Required("email", in.Email),
			validate.Email("email", in.Email),
		),
		validate.Password("password", in.Password),
	)
}

type UserService struct {
	r      repo.Accounts
	hasher CredentialHasher
	audit  AuditRecorder
	now    func() time.Time
}

func NewUserService(r repo.Accounts, h CredentialHasher, a AuditRecorder) *UserService {
	return &UserService{r: r, hasher: h, audit: a, now: time.Now}
}

// Register creates an account. Emails are compared and stored lower-cased.
func (s *UserService) Register(ctx context.Context, in RegisterInput, client models.ClientInfo) (models.AccountSummary, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if errs := in.validate(); len(errs) > 0 {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return models.AccountSummary{}, invalidInput(errs)
	}
	email := models.NormalizeEmail(in.Email)

	_, err := s.r.GetByEmail(ctx, email)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return models.AccountSummary{}, ErrConflict
	case !errors.Is(err, repo.ErrNotFound):
		return models.AccountSummary{}, internal("lookup email", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.AccountSummary{}, internal("hash password", err)
	}

	now := s.now().UTC()
	acc, err := s.r.Create(ctx, models.Account{
		Email:        email,
		Name:         in.Name,
		PasswordHash: hash,
		Theme:        models.DefaultTheme,
		Language:     models.DefaultLanguage,
		Timezone:     models.DefaultTimezone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, repo.ErrConflict) {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return models.AccountSummary{}, conflict(err)
	}
	if err != nil {
		return models.AccountSummary{}, internal("create account", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	slog.InfoContext(ctx, "account registered", "account_id", acc.ID)
	s.audit.Record(ctx, acc.ID, models.RegisteredDetail{Email: acc.Email}, true, client)
	return acc.Summary(), nil
}
