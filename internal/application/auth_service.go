package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/internal/domain/repository"
	"github.com/satriadika/auth-service/pkg/helpers"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service orchestrates the credential store, the password hasher and the
// token issuer for the two public flows.
type Service struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, JWT: jwt, Logger: logger}
}

// Register hashes the password and stores a new user. The plaintext never
// reaches the repository.
func (s *Service) Register(ctx context.Context, username, password string, role entity.Role) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("password hashing failed")
		}
		return nil, err
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("user create failed")
		}
		return nil, err
	}
	return u, nil
}

// Login validates username/password and issues a token. A lookup miss and a
// password mismatch return the same error so callers cannot probe which
// usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil || u == nil {
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) && s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("user lookup failed")
		}
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.Username, u.Role.String())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("token generation failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
