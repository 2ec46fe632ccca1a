package repository

import (
	"context"
	"errors"

	"github.com/satriadika/auth-service/internal/domain/entity"
)

var (
	// ErrDuplicateUsername is returned by Create when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrUserNotFound is returned by GetByUsername on a lookup miss.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the contract every credential store backend must
// satisfy: uniqueness enforced at Create, lookup by exact username.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
