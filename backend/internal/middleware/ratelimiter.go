package middleware

import (
	"errors"
	"net/http"

	"github.com/openforum-dev/forumapi/backend/internal/middleware/ratelimiter"
	"github.com/openforum-dev/forumapi/shared/api"
	"github.com/openforum-dev/forumapi/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl == nil {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteJSON(w, http.StatusTooManyRequests, api.Response{Status: api.StatusFail, Message: "terlalu banyak permintaan, coba lagi nanti"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Possible if user was authorized with previous middleware
func GetUserIdFromContext(r *http.Request) (string, error) {
	creds := GetCredentialsFromContext(r)
	if creds == nil {
		return "", errors.New("can't get user id")
	}
	return "user_" + creds.Id, nil
}

func GetIP(r *http.Request) (string, error) {
	ip, err := utils.GetIP(r)
	if err != nil {
		return "", err
	}
	return "ip_" + ip, nil
}
