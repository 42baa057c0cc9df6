package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
)

// TokenManager issues and checks the two HS256 tokens of a session.
// Access and refresh tokens are signed with different keys so one can
// never be presented as the other.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *TokenManager) CreateAccessToken(payload domain.Credentials) (string, error) {
	return m.sign(payload, m.accessKey, m.accessTTL)
}

func (m *TokenManager) CreateRefreshToken(payload domain.Credentials) (string, error) {
	return m.sign(payload, m.refreshKey, m.refreshTTL)
}

func (m *TokenManager) VerifyAccessToken(token string) error {
	if _, err := m.parse(token, m.accessKey); err != nil {
		return internal_errors.Authentication("access token tidak valid")
	}
	return nil
}

func (m *TokenManager) VerifyRefreshToken(token string) error {
	if _, err := m.parse(token, m.refreshKey); err != nil {
		return internal_errors.Invariant("refresh token tidak valid")
	}
	return nil
}

// DecodePayload reads the credentials without checking the signature.
// Callers verify the token first.
func (m *TokenManager) DecodePayload(token string) (domain.Credentials, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.Credentials{}, internal_errors.Authentication("access token tidak valid")
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return domain.Credentials{}, internal_errors.Authentication("access token tidak valid")
	}
	return domain.Credentials{Id: id, Username: username}, nil
}

func (m *TokenManager) sign(payload domain.Credentials, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       payload.Id,
		"username": payload.Username,
		"iat":      now.Unix(),
		"jti":      uuid.NewString(),
	}
	if ttl != 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (m *TokenManager) parse(token string, key []byte) (*jwt.Token, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return parsed, nil
}
