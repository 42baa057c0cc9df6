package middleware

import (
	"context"
	"net/http"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/utils"
)

// Key to store the credentials in the request context
type key int

const credentialsKey key = 0

type Authenticator interface {
	Authenticate(header string) (domain.Credentials, error)
}

// NeedAuth rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the token's credentials in the request context.
func NeedAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, err := auth.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCredentials(r.Context(), creds)))
		})
	}
}

func WithCredentials(ctx context.Context, creds domain.Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, &creds)
}

// GetCredentialsFromContext returns nil outside of NeedAuth.
func GetCredentialsFromContext(r *http.Request) *domain.Credentials {
	creds, ok := r.Context().Value(credentialsKey).(*domain.Credentials)
	if !ok {
		return nil
	}
	return creds
}
