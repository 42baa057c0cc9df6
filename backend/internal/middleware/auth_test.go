package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authenticatorFunc func(header string) (domain.Credentials, error)

func (f authenticatorFunc) Authenticate(header string) (domain.Credentials, error) {
	return f(header)
}

func TestNeedAuth(t *testing.T) {
	creds := domain.Credentials{Id: "user-123", Username: "dicoding"}
	auth := authenticatorFunc(func(header string) (domain.Credentials, error) {
		switch {
		case header == "":
			return domain.Credentials{}, domain.ErrAccessTokenMissing
		case header == "Bearer good":
			return creds, nil
		case !strings.HasPrefix(header, "Bearer "):
			return domain.Credentials{}, domain.ErrAccessTokenScheme
		default:
			return domain.Credentials{}, internal_errors.Authentication("access token tidak valid")
		}
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid token",
			header:         "Bearer good",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Missing authentication",
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			header:         "Bearer bad",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "access token tidak valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/threads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			called := false
			NeedAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got := GetCredentialsFromContext(r)
				require.NotNil(t, got, "NeedAuth should always propagate credentials thru context")
				assert.Equal(t, creds, *got)
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestGetCredentialsFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetCredentialsFromContext(req))

	_, err := GetUserIdFromContext(req)
	assert.Error(t, err)
}
