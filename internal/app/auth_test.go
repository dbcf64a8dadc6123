package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/app"
	"staycation/internal/domain"
	"staycation/internal/storage/memory"
)

func TestAuth_RegisterLoginVerify(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), newHasher(t), newTokens(t))

	u, tok, err := svc.Register(ctx, app.RegisterInput{Name: "Asha", Email: " Asha@Example.com", Password: "secret1", Phone: "98"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NotEmpty(t, tok)

	id, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)

	lu, ltok, err := svc.Login(ctx, "ASHA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, lu.ID)
	assert.NotEmpty(t, ltok)
}

func TestAuth_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), newHasher(t), newTokens(t))

	_, _, err := svc.Register(ctx, app.RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, app.RegisterInput{Name: "B", Email: "A@X.COM", Password: "secret2"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuth_LoginFailuresLookTheSame(t *testing.T) {
	ctx := context.Background()
	svc := app.NewAuthService(memory.New(), newHasher(t), newTokens(t))
	_, _, err := svc.Register(ctx, app.RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(ctx, "nobody@x.com", "secret1")
	_, _, errWrong := svc.Login(ctx, "a@x.com", "wrong-pass")

	require.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuth_RegisterRequiresFields(t *testing.T) {
	svc := app.NewAuthService(memory.New(), newHasher(t), newTokens(t))
	_, _, err := svc.Register(context.Background(), app.RegisterInput{Email: "a@x.com", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuth_VerifyRejectsGarbage(t *testing.T) {
	svc := app.NewAuthService(memory.New(), newHasher(t), newTokens(t))
	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuth_RegisterRejectsOverlongPassword(t *testing.T) {
	svc := app.NewAuthService(memory.New(), newHasher(t), newTokens(t))

	_, _, err := svc.Register(context.Background(), app.RegisterInput{
		Name: "A", Email: "a@x.com", Password: strings.Repeat("p", 80),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
