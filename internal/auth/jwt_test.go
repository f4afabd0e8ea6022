package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("secret", "accounts")

	tok, err := tm.Issue("acc-1", time.Minute)
	require.NoError(t, err)

	id, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", "accounts")

	expired, err := tm.Issue("acc-1", -time.Minute)
	require.NoError(t, err)
	_, err = tm.Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewTokenManager("other", "accounts").Issue("acc-1", time.Minute)
	require.NoError(t, err)
	_, err = tm.Parse(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongIssuer, err := NewTokenManager("secret", "someone-else").Issue("acc-1", time.Minute)
	require.NoError(t, err)
	_, err = tm.Parse(wrongIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
