package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
	sharedpg "github.com/openforum-dev/forumapi/shared/storage/pg"
)

var (
	errUsernameTaken    = internal_errors.Invariant("username tidak tersedia")
	errUsernameNotFound = internal_errors.Invariant("username tidak ditemukan")
)

// =========================================================================
// Public Methods (satisfy the service.UserRepository interface)
// =========================================================================

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	var exists bool
	err := s.q(ctx).QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return errUsernameTaken
	}
	return nil
}

// AddUser expects user.Password to hold the hash. A concurrent registration
// of the same name loses on the unique constraint.
func (s *Storage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	var id domain.UserId
	var username domain.Username
	var fullname string
	err := s.q(ctx).QueryRowContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, s.ids.New("user"), user.Username, user.Password, user.Fullname).Scan(&id, &username, &fullname)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return domain.RegisteredUser{}, errUsernameTaken
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.NewRegisteredUser(id, username, fullname)
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error) {
	return s.userColumn(ctx, "password", username)
}

func (s *Storage) GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error) {
	return s.userColumn(ctx, "id", username)
}

func (s *Storage) userColumn(ctx context.Context, column string, username domain.Username) (string, error) {
	var value string
	err := s.q(ctx).QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM users WHERE username = $1", sharedpg.Identifier(column)), username,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errUsernameNotFound
		}
		return "", fmt.Errorf("failed to fetch user %s: %w", column, err)
	}
	return value, nil
}
