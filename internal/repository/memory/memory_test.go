package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/repository"
)

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	s := NewAccounts()

	acc, err := s.Create(ctx, models.Account{Email: "ada@example.com", Name: "Ada", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)
	assert.False(t, acc.CreatedAt.IsZero())

	_, err = s.Create(ctx, models.Account{Email: "ada@example.com"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	got, err := s.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, s.UpdatePasswordHash(ctx, "missing", "x", time.Now()), repository.ErrNotFound)

	at := acc.CreatedAt.Add(time.Minute)
	updated, err := s.UpdateBasicInfo(ctx, acc.ID, models.BasicInfo{FirstName: "Ada", LastName: "Byron"}, at)
	require.NoError(t, err)
	assert.Equal(t, "Ada Byron", updated.Name)
	assert.Equal(t, at, updated.UpdatedAt)
	assert.Equal(t, "h", updated.PasswordHash)
}

func TestProfiles_UpsertStartsFromDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewProfiles()

	_, err := s.Get(ctx, "a1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	occ := "Analyst"
	require.NoError(t, s.UpsertProfessional(ctx, "a1", models.ProfessionalInfo{Occupation: &occ}, time.Now()))

	p, err := s.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfileSettings(), p.Settings)
	assert.Equal(t, &occ, p.Professional.Occupation)
}

func TestAuditEvents_ListByAccount(t *testing.T) {
	ctx := context.Background()
	s := NewAuditEvents()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// two share a timestamp; the later insert must come first
	for i, at := range []time.Time{base, base.Add(time.Second), base.Add(time.Second)} {
		require.NoError(t, s.Create(ctx, models.AuditEvent{
			AccountID: "a1",
			Action:    models.ActionProfileUpdated,
			IPAddress: string(rune('a' + i)),
			CreatedAt: at,
		}))
	}
	require.NoError(t, s.Create(ctx, models.AuditEvent{AccountID: "a2", CreatedAt: base}))

	page, err := s.ListByAccount(ctx, "a1", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].IPAddress)
	assert.Equal(t, "b", page[1].IPAddress)

	rest, err := s.ListByAccount(ctx, "a1", 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "a", rest[0].IPAddress)

	empty, err := s.ListByAccount(ctx, "a1", 2, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	n, err := s.CountByAccount(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, s.All("a2"), 1)
}
