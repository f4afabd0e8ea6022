package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

func seedEvents(t *testing.T, e *env, accountID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, e.repos.AuditEvents.Create(context.Background(), models.AuditEvent{
			AccountID: accountID,
			Action:    models.ActionProfileUpdated,
			Details:   models.ProfileUpdatedDetail{Section: models.SectionBasic},
			Success:   true,
			CreatedAt: fixedNow.Add(time.Duration(i) * time.Second),
		}))
	}
}

func TestSecurityLogs_LimitCappedAt50(t *testing.T) {
	e := newEnv(t)
	seedEvents(t, e, "acc-1", 120)

	page, err := e.logs.List(context.Background(), models.Identity{AccountID: "acc-1"}, PageRequest{Limit: 1000})
	require.NoError(t, err)

	assert.Len(t, page.Events, 50)
	assert.Equal(t, Pagination{Total: 120, Limit: 50, Offset: 0, HasMore: true}, page.Pagination)
	assert.True(t, page.Events[0].CreatedAt.After(page.Events[1].CreatedAt))
}

func TestSecurityLogs_Defaults(t *testing.T) {
	e := newEnv(t)
	seedEvents(t, e, "acc-1", 25)

	page, err := e.logs.List(context.Background(), models.Identity{AccountID: "acc-1"}, PageRequest{Limit: 0, Offset: -3})
	require.NoError(t, err)

	assert.Len(t, page.Events, 20)
	assert.Equal(t, Pagination{Total: 25, Limit: 20, Offset: 0, HasMore: true}, page.Pagination)
}

func TestSecurityLogs_HasMore(t *testing.T) {
	e := newEnv(t)
	seedEvents(t, e, "acc-1", 25)
	id := models.Identity{AccountID: "acc-1"}

	cases := []struct {
		req      PageRequest
		returned int
		hasMore  bool
	}{
		{PageRequest{Limit: 10, Offset: 0}, 10, true},
		{PageRequest{Limit: 10, Offset: 15}, 10, false},
		{PageRequest{Limit: 10, Offset: 20}, 5, false},
		{PageRequest{Limit: 10, Offset: 40}, 0, false},
	}
	for _, c := range cases {
		page, err := e.logs.List(context.Background(), id, c.req)
		require.NoError(t, err)
		assert.Len(t, page.Events, c.returned)
		assert.Equal(t, c.hasMore, page.Pagination.HasMore)
		assert.Equal(t, c.req.Offset+len(page.Events) < page.Pagination.Total, page.Pagination.HasMore)
	}
}

func TestSecurityLogs_OnlyOwnEvents(t *testing.T) {
	e := newEnv(t)
	seedEvents(t, e, "acc-1", 3)
	seedEvents(t, e, "acc-2", 7)

	page, err := e.logs.List(context.Background(), models.Identity{AccountID: "acc-1"}, PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Events, 3)
	assert.Equal(t, 3, page.Pagination.Total)

	_, err = e.logs.List(context.Background(), models.Identity{}, PageRequest{})
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}
