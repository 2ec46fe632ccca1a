package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/internal/domain/repository"
)

// UserRepository stores each user as one JSON value under user:<username>.
// SetNX writes the whole record in a single command, so a username is either
// fully registered or absent: a failed write reserves nothing, and readers
// never observe a partial record.
type UserRepository struct {
	rdb *redis.Client
}

func NewUserRepository(rdb *redis.Client) *UserRepository {
	return &UserRepository{rdb: rdb}
}

type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func userKey(username string) string { return "user:" + username }

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	b, err := json.Marshal(userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.UTC(),
	})
	if err != nil {
		return err
	}
	ok, err := r.rdb.SetNX(ctx, userKey(u.Username), b, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrDuplicateUsername
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	b, err := r.rdb.Get(ctx, userKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec userRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode user record %q: %w", username, err)
	}
	return &entity.User{
		ID:           rec.ID,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		Role:         entity.Role(rec.Role),
		CreatedAt:    rec.CreatedAt,
	}, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
