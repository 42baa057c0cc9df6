package service

import (
	"context"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/logger"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
)

type UserRepository interface {
	// VerifyAvailableUsername fails with Invariant when the name is taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	// AddUser stores a user whose Password is already hashed.
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error)
	GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error)
}

type User struct {
	users     UserRepository
	hasher    PasswordHash
	sanitizer Sanitizer
}

func NewUser(users UserRepository, hasher PasswordHash, sanitizer Sanitizer) *User {
	return &User{users, hasher, sanitizer}
}

func (s *User) Register(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.RegisteredUser, error) {
	user, err := domain.NewRegisterUser(username, password, s.sanitizer.Sanitize(fullname))
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := s.users.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed

	registered, err := s.users.AddUser(ctx, user)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	metrics.EntitiesCreated.WithLabelValues("user").Inc()
	logger.Component("service").Info("user registered", "user_id", registered.Id)
	return registered, nil
}
