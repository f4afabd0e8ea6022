package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/repository/memory"
)

func changeInput(current, next string) ChangePasswordInput {
	return ChangePasswordInput{CurrentPassword: current, NewPassword: next, ConfirmPassword: next}
}

func storedHash(t *testing.T, e *env, id models.Identity) string {
	t.Helper()
	acc, err := e.repos.Accounts.GetByID(context.Background(), id.AccountID)
	require.NoError(t, err)
	return acc.PasswordHash
}

func TestChangePassword_Success(t *testing.T) {
	e := newEnv(t)
	id := e.register(t, "a@x.com", "Abcdefg1")
	before := storedHash(t, e, id)

	err := e.password.ChangePassword(context.Background(), id, changeInput("Abcdefg1", "Newpass99"), testClient)
	require.NoError(t, err)

	after := storedHash(t, e, id)
	assert.NotEqual(t, before, after)
	assert.False(t, e.hasher.Verify("Abcdefg1", after))
	assert.True(t, e.hasher.Verify("Newpass99", after))

	acc, err := e.repos.Accounts.GetByID(context.Background(), id.AccountID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, acc.UpdatedAt)

	events := e.repos.AuditEvents.All(id.AccountID)
	require.Len(t, events, 2)
	last := events[1]
	assert.Equal(t, models.ActionPasswordChanged, last.Action)
	assert.True(t, last.Success)
	assert.Equal(t, models.PasswordChangedDetail{Timestamp: fixedNow}, last.Details)
	assert.Equal(t, "203.0.113.7", last.IPAddress)
	assert.Equal(t, "test-agent", last.UserAgent)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	e := newEnv(t)
	id := e.register(t, "a@x.com", "Abcdefg1")
	before := storedHash(t, e, id)

	err := e.password.ChangePassword(context.Background(), id, changeInput("Wrongpass1", "Newpass99"), testClient)

	assert.True(t, errors.Is(err, ErrInvalidCredential))
	assert.Equal(t, before, storedHash(t, e, id))

	events := e.repos.AuditEvents.All(id.AccountID)
	require.Len(t, events, 2)
	failed := events[1]
	assert.Equal(t, models.ActionPasswordChangeFailed, failed.Action)
	assert.False(t, failed.Success)
	assert.Equal(t, models.PasswordChangeFailedDetail{Reason: "invalid_current_password"}, failed.Details)
}

func TestChangePassword_ValidationHasNoSideEffects(t *testing.T) {
	cases := map[string]ChangePasswordInput{
		"missing current": {NewPassword: "Newpass99", ConfirmPassword: "Newpass99"},
		"weak new":        changeInput("Abcdefg1", "newpass"),
		"no digit":        changeInput("Abcdefg1", "Newpassword"),
		"mismatch":        {CurrentPassword: "Abcdefg1", NewPassword: "Newpass99", ConfirmPassword: "Newpass98"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			id := e.register(t, "a@x.com", "Abcdefg1")
			before := storedHash(t, e, id)

			err := e.password.ChangePassword(context.Background(), id, in, testClient)

			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, KindInvalidInput, se.Kind)
			assert.NotEmpty(t, se.Fields)
			assert.Equal(t, before, storedHash(t, e, id))
			assert.Equal(t, []models.AuditAction{models.ActionAccountRegistered}, e.actions(id.AccountID))
		})
	}
}

func TestChangePassword_MismatchReportsConfirmField(t *testing.T) {
	e := newEnv(t)
	id := e.register(t, "a@x.com", "Abcdefg1")

	err := e.password.ChangePassword(context.Background(), id,
		ChangePasswordInput{CurrentPassword: "Abcdefg1", NewPassword: "Newpass99", ConfirmPassword: "x"}, testClient)

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, map[string]string{"confirmPassword": "Passwords don't match"}, se.Fields)
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	e := newEnv(t)

	err := e.password.ChangePassword(context.Background(), models.Identity{}, changeInput("Abcdefg1", "Newpass99"), testClient)

	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestChangePassword_AccountMissing(t *testing.T) {
	e := newEnv(t)

	err := e.password.ChangePassword(context.Background(), models.Identity{AccountID: "ghost"},
		changeInput("Abcdefg1", "Newpass99"), testClient)

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Empty(t, e.repos.AuditEvents.All("ghost"))
}

type brokenAudit struct{ *memory.AuditEvents }

func (brokenAudit) Create(context.Context, models.AuditEvent) error {
	return errors.New("audit store down")
}

func TestChangePassword_AuditFailureDoesNotMaskSuccess(t *testing.T) {
	e := newEnv(t)
	id := e.register(t, "a@x.com", "Abcdefg1")

	svc := NewPasswordService(e.repos.Accounts, e.hasher, auditLoggerOver(brokenAudit{memory.NewAuditEvents()}))
	svc.now = func() time.Time { return fixedNow }

	err := svc.ChangePassword(context.Background(), id, changeInput("Abcdefg1", "Newpass99"), testClient)

	require.NoError(t, err)
	assert.True(t, e.hasher.Verify("Newpass99", storedHash(t, e, id)))
}
