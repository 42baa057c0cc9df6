package service

import (
	"context"
	"strings"
	"testing"

	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success hashes password", func(t *testing.T) {
		users := &MockUserRepository{}
		service := NewUser(users, MockPasswordHash{}, MockSanitizer{})

		registered, err := service.Register(ctx, "dicoding", "secret", "<b>Dicoding Indonesia")

		require.NoError(t, err)
		assert.Equal(t, domain.RegisteredUser{Id: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, registered)
		require.NotNil(t, users.addUserArg)
		assert.Equal(t, "hashed:secret", users.addUserArg.Password)
	})

	t.Run("Username taken", func(t *testing.T) {
		users := &MockUserRepository{
			verifyAvailableUsernameFunc: func(username domain.Username) error {
				return internal_errors.Invariant("username tidak tersedia")
			},
		}
		service := NewUser(users, MockPasswordHash{}, MockSanitizer{})

		_, err := service.Register(ctx, "dicoding", "secret", "Dicoding Indonesia")

		assert.True(t, internal_errors.IsInvariant(err))
		assert.Nil(t, users.addUserArg)
	})

	t.Run("Validation codes", func(t *testing.T) {
		service := NewUser(&MockUserRepository{}, MockPasswordHash{}, MockSanitizer{})

		_, err := service.Register(ctx, strings.Repeat("a", 51), "secret", "x")
		assert.ErrorIs(t, err, domain.ErrRegisterUserUsernameLimit)

		_, err = service.Register(ctx, "dico-ding", "secret", "x")
		assert.ErrorIs(t, err, domain.ErrRegisterUserUsernameRestricted)

		_, err = service.Register(ctx, "dicoding", "secret", "")
		assert.ErrorIs(t, err, domain.ErrRegisterUserMissingProperty)
	})
}
