package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/accounts-backend/internal/audit"
	"github.com/baharkarakas/accounts-backend/internal/auth"
	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/repository"
	"github.com/baharkarakas/accounts-backend/internal/repository/memory"
)

var (
	fixedNow   = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	testClient = models.ClientInfo{Address: "203.0.113.7", Agent: "test-agent"}
)

type env struct {
	repos    memory.Repositories
	hasher   *auth.Hasher
	audit    *audit.Logger
	users    *UserService
	password *PasswordService
	profile  *ProfileService
	settings *SettingsService
	logs     *SecurityLogService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	repos := memory.NewRepositories()
	h := auth.NewHasher(bcrypt.MinCost)
	a := audit.NewLogger(repos.AuditEvents, slog.New(slog.NewTextHandler(io.Discard, nil)),
		audit.WithClock(func() time.Time { return fixedNow }))

	e := &env{
		repos:    repos,
		hasher:   h,
		audit:    a,
		users:    NewUserService(repos.Accounts, h, a),
		password: NewPasswordService(repos.Accounts, h, a),
		profile:  NewProfileService(repos.Accounts, repos.Profiles, a),
		settings: NewSettingsService(repos.Accounts, repos.Profiles, a),
		logs:     NewSecurityLogService(repos.AuditEvents),
	}
	clock := func() time.Time { return fixedNow }
	e.users.now, e.password.now, e.profile.now, e.settings.now = clock, clock, clock, clock
	return e
}

// register creates an account and returns its identity.
func (e *env) register(t *testing.T, email, password string) models.Identity {
	t.Helper()
	sum, err := e.users.Register(context.Background(), RegisterInput{Name: "Ann", Email: email, Password: password}, testClient)
	require.NoError(t, err)
	return models.Identity{AccountID: sum.ID}
}

func (e *env) actions(accountID string) []models.AuditAction {
	var out []models.AuditAction
	for _, ev := range e.repos.AuditEvents.All(accountID) {
		out = append(out, ev.Action)
	}
	return out
}

func auditLoggerOver(store repository.AuditEvents) *audit.Logger {
	return audit.NewLogger(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
