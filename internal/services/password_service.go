package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/baharkarakas/accounts-backend/internal/api/validate"
	"github.com/baharkarakas/accounts-backend/internal/metrics"
	"github.com/baharkarakas/accounts-backend/internal/models"
	repo "github.com/baharkarakas/accounts-backend/internal/repository"
)

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (in ChangePasswordInput) validate() validate.Errs {
	errs := validate.Collect(
		validate.Required("currentPassword", in.CurrentPassword),
		validate.Password("newPassword", in.NewPassword),
	)
	if in.ConfirmPassword != in.NewPassword {
		errs = append(errs, validate.ErrField{Field: "confirmPassword", Msg: "Passwords don't match"})
	}
	return errs
}

// PasswordService is the credential change flow: verify old, hash new, persist, audit.
type PasswordService struct {
	accounts repo.Accounts
	hasher   CredentialHasher
	audit    AuditRecorder
	now      func() time.Time
}

func NewPasswordService(accounts repo.Accounts, h CredentialHasher, a AuditRecorder) *PasswordService {
	return &PasswordService{accounts: accounts, hasher: h, audit: a, now: time.Now}
}

// ChangePassword mutates the stored hash only after the current secret verifies.
// A wrong current secret is the one failure that leaves an audit row behind.
func (s *PasswordService) ChangePassword(ctx context.Context, id models.Identity, in ChangePasswordInput, client models.ClientInfo) error {
	if !id.Resolved() {
		return ErrUnauthenticated
	}
	if errs := in.validate(); len(errs) > 0 {
		metrics.PasswordChangesTotal.WithLabelValues("invalid").Inc()
		return invalidInput(errs)
	}

	acc, err := s.accounts.GetByID(ctx, id.AccountID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && acc.PasswordHash == "") {
		return notFound(err)
	}
	if err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("error").Inc()
		return internal("load account", err)
	}

	if !s.hasher.Verify(in.CurrentPassword, acc.PasswordHash) {
		metrics.PasswordChangesTotal.WithLabelValues("invalid_credential").Inc()
		s.audit.Record(ctx, acc.ID,
			models.PasswordChangeFailedDetail{Reason: models.ReasonInvalidCurrentPassword}, false, client)
		return ErrInvalidCredential
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("error").Inc()
		return internal("hash password", err)
	}
	now := s.now().UTC()
	if err := s.accounts.UpdatePasswordHash(ctx, acc.ID, hash, now); err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("error").Inc()
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(err)
		}
		return internal("update password", err)
	}

	metrics.PasswordChangesTotal.WithLabelValues("changed").Inc()
	slog.InfoContext(ctx, "password changed", "account_id", acc.ID)
	s.audit.Record(ctx, acc.ID, models.PasswordChangedDetail{Timestamp: now}, true, client)
	return nil
}
