package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

func TestRegister_NormalizesEmail(t *testing.T) {
	e := newEnv(t)

	sum, err := e.users.Register(context.Background(),
		RegisterInput{Name: "Ann", Email: "A@x.com", Password: "Abcdefg1"}, testClient)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", sum.Email)
	assert.Equal(t, "Ann", sum.Name)
	assert.NotEmpty(t, sum.ID)

	acc, err := e.repos.Accounts.GetByID(context.Background(), sum.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdefg1", acc.PasswordHash)
	assert.True(t, e.hasher.Verify("Abcdefg1", acc.PasswordHash))
	assert.Equal(t, models.DefaultTheme, acc.Theme)
	assert.Equal(t, []models.AuditAction{models.ActionAccountRegistered}, e.actions(sum.ID))
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	e := newEnv(t)
	first := e.register(t, "A@x.com", "Abcdefg1")

	_, err := e.users.Register(context.Background(),
		RegisterInput{Name: "Ann", Email: "a@X.COM", Password: "Abcdefg1"}, testClient)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, KindConflict, KindOf(err))

	acc, err := e.repos.Accounts.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.AccountID, acc.ID)
}

func TestRegister_InvalidInput(t *testing.T) {
	e := newEnv(t)

	_, err := e.users.Register(context.Background(),
		RegisterInput{Name: "A", Email: "nope", Password: "weak"}, testClient)

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindInvalidInput, se.Kind)
	assert.Contains(t, se.Fields, "name")
	assert.Contains(t, se.Fields, "email")
	assert.Contains(t, se.Fields, "password")

	_, err = e.repos.Accounts.GetByEmail(context.Background(), "nope")
	assert.Error(t, err)
}
