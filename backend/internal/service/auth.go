package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/logger"
)

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	// CheckAvailabilityToken fails with Invariant when the token is not stored.
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type TokenManager interface {
	CreateAccessToken(payload domain.Credentials) (string, error)
	CreateRefreshToken(payload domain.Credentials) (string, error)
	VerifyAccessToken(token string) error
	VerifyRefreshToken(token string) error
	DecodePayload(token string) (domain.Credentials, error)
}

type PasswordHash interface {
	Hash(password string) (string, error)
	ComparePassword(password, hashed string) error
}

type Auth struct {
	users  UserRepository
	auths  AuthenticationRepository
	tokens TokenManager
	hasher PasswordHash
}

func NewAuth(users UserRepository, auths AuthenticationRepository, tokens TokenManager, hasher PasswordHash) *Auth {
	return &Auth{users, auths, tokens, hasher}
}

const bearerScheme = "Bearer "

// Authenticate resolves an Authorization header value to the caller's
// credentials.
func (s *Auth) Authenticate(header string) (domain.Credentials, error) {
	if header == "" {
		return domain.Credentials{}, domain.ErrAccessTokenMissing
	}
	token, ok := strings.CutPrefix(header, bearerScheme)
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return domain.Credentials{}, domain.ErrAccessTokenScheme
	}

	if err := s.tokens.VerifyAccessToken(token); err != nil {
		return domain.Credentials{}, err
	}
	return s.tokens.DecodePayload(token)
}

func (s *Auth) Login(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error) {
	login, err := domain.NewUserLogin(username, password)
	if err != nil {
		return domain.AuthTokens{}, err
	}

	hashed, err := s.users.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	if err := s.hasher.ComparePassword(login.Password, hashed); err != nil {
		return domain.AuthTokens{}, err
	}

	id, err := s.users.GetIdByUsername(ctx, login.Username)
	if err != nil {
		return domain.AuthTokens{}, err
	}

	payload := domain.Credentials{Username: login.Username, Id: id}
	access, err := s.tokens.CreateAccessToken(payload)
	if err != nil {
		return domain.AuthTokens{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refresh, err := s.tokens.CreateRefreshToken(payload)
	if err != nil {
		return domain.AuthTokens{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokens, err := domain.NewAuthTokens(access, refresh)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	if err := s.auths.AddToken(ctx, tokens.RefreshToken); err != nil {
		return domain.AuthTokens{}, err
	}

	logger.Component("service").Info("user logged in", "user_id", id)
	return tokens, nil
}

// Refresh issues a new access token for a stored refresh token.
func (s *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrRefreshAuthMissingToken
	}

	if err := s.tokens.VerifyRefreshToken(refreshToken); err != nil {
		return "", err
	}
	if err := s.auths.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}

	payload, err := s.tokens.DecodePayload(refreshToken)
	if err != nil {
		return "", err
	}
	access, err := s.tokens.CreateAccessToken(payload)
	if err != nil {
		return "", fmt.Errorf("failed to create access token: %w", err)
	}
	return access, nil
}

// Logout forgets a refresh token. Access tokens stay valid until they expire.
func (s *Auth) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrDeleteAuthMissingToken
	}

	if err := s.auths.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return s.auths.DeleteToken(ctx, refreshToken)
}
