package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/internal/domain/repository"
)

func newUser(username string, role entity.Role) *entity.User {
	return &entity.User{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", entity.RoleUser)))

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, entity.RoleUser, got.Role)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", entity.RoleUser)))
	err := repo.Create(ctx, newUser("alice", entity.RoleAdmin))
	require.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestUserRepository_CaseSensitiveLookup(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("Alice", entity.RoleUser)))
	_, err := repo.GetByUsername(ctx, "alice")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newUser("alice", entity.RoleUser)))

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	got.Role = entity.RoleAdmin

	again, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, entity.RoleUser, again.Role)
}

func TestUserRepository_ConcurrentCreate(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	const workers = 32
	var created atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, newUser("alice", entity.RoleUser)); err == nil {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), created.Load())
}
