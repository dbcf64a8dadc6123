package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"staycation/internal/auth"
	"staycation/internal/domain"
)

func TestHasher_HashAndCheck(t *testing.T) {
	h, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, h.Check(hash, "s3cret!"))
	assert.False(t, h.Check(hash, "wrong"))
	assert.False(t, h.Check("", "s3cret!"))
}

func TestHasher_SaltsEachHash(t *testing.T) {
	h, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	assert.NotEqual(t, a, b)
}

func TestTokens_IssueVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tk, err := auth.NewTokens("test-secret", 24*time.Hour)
	require.NoError(t, err)
	tk = tk.WithClock(func() time.Time { return now })

	token, err := tk.Issue(42, "ana@example.com")
	require.NoError(t, err)

	id, err := tk.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, "ana@example.com", id.Email)
	assert.True(t, id.IssuedAt.Equal(now))
}

func TestTokens_Expired(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tk, err := auth.NewTokens("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := tk.WithClock(func() time.Time { return now }).Issue(1, "a@b.c")
	require.NoError(t, err)

	later := tk.WithClock(func() time.Time { return now.Add(2 * time.Hour) })
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokens_WrongSecretAndGarbage(t *testing.T) {
	a, _ := auth.NewTokens("secret-a", 0)
	b, _ := auth.NewTokens("secret-b", 0)

	token, err := a.Issue(7, "x@y.z")
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = a.Verify("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewTokens_RequiresSecret(t *testing.T) {
	_, err := auth.NewTokens("", time.Hour)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", auth.BearerToken("Bearer abc"))
	assert.Equal(t, "abc", auth.BearerToken("bearer   abc "))
	assert.Equal(t, "", auth.BearerToken("Basic abc"))
	assert.Equal(t, "", auth.BearerToken(""))
	assert.Equal(t, "", auth.BearerToken("Bearer "))
}

func TestHasher_RejectsTooLongPassword(t *testing.T) {
	h, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", auth.MaxPasswordBytes+1))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.Hash(strings.Repeat("a", auth.MaxPasswordBytes))
	assert.NoError(t, err)
}
