package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/internal/infrastructure/memory"
	"github.com/satriadika/auth-service/pkg/helpers"
)

func newService(ttl time.Duration) *Service {
	return NewService(memory.NewUserRepository(), helpers.NewJWTManager("test-secret", ttl), nil)
}

func TestService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc := newService(time.Hour)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "s3cret", entity.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, entity.RoleUser, u.Role)
	require.NotEqual(t, "s3cret", u.PasswordHash)

	token, exp, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, "user", claims.Role)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other", entity.RoleUser)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Login_IndistinguishableFailures(t *testing.T) {
	t.Parallel()

	svc := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret", entity.RoleUser)
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(ctx, "ghost", "whatever")
	_, _, wrongPwErr := svc.Login(ctx, "alice", "wrong")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	require.Equal(t, unknownErr, wrongPwErr)
}

func TestService_Login_TokenExpiresWithTTL(t *testing.T) {
	t.Parallel()

	svc := newService(-time.Second)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret", entity.RoleUser)
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.JWT.Parse(token)
	require.ErrorIs(t, err, helpers.ErrTokenExpired)
}
