package setup

import (
	"context"
	"time"

	"github.com/openforum-dev/forumapi/backend/internal/handler"
	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/backend/internal/middleware/ratelimiter"
	"github.com/openforum-dev/forumapi/backend/internal/service"
	"github.com/openforum-dev/forumapi/backend/internal/storage/pg"
	"github.com/openforum-dev/forumapi/backend/internal/utils"
	"github.com/openforum-dev/forumapi/shared/config"
	"github.com/openforum-dev/forumapi/shared/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config       *config.Config
	Storage      *pg.Storage
	Handler      *handler.Handler
	Auth         middleware.Authenticator
	LoginLimiter *ratelimiter.UserRateLimiter
	WriteLimiter *ratelimiter.UserRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg, utils.IdGenerator{})
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.Public.Auth.AccessTokenTTL, cfg.Public.Auth.RefreshTokenTTL)
	hasher := utils.NewBcryptHasher(bcrypt.DefaultCost)
	sanitizer := utils.NewSanitizer()

	users := service.NewUser(storage, hasher, sanitizer)
	auth := service.NewAuth(storage, storage, tokens, hasher)
	thread := service.NewThread(storage, storage, storage, storage, sanitizer, cfg.Public.ThreadFanout)
	comment := service.NewComment(storage, storage, sanitizer)
	reply := service.NewReply(storage, storage, storage, sanitizer)
	like := service.NewCommentLike(storage, storage, storage, storage)

	h := handler.New(users, auth, thread, comment, reply, like, storage)

	return &Dependencies{
		Config:       cfg,
		Storage:      storage,
		Handler:      h,
		Auth:         auth,
		LoginLimiter: newLimiter(cfg.Public.RateLimits.Login),
		WriteLimiter: newLimiter(cfg.Public.RateLimits.Write),
	}, nil
}

// newLimiter returns nil for a non-positive rate, which disables limiting.
func newLimiter(perSecond float64) *ratelimiter.UserRateLimiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return ratelimiter.New(perSecond, burst, time.Hour)
}

// Close stops the limiters and closes the database pool.
func (d *Dependencies) Close() error {
	for _, rl := range []*ratelimiter.UserRateLimiter{d.LoginLimiter, d.WriteLimiter} {
		if rl != nil {
			rl.Stop()
		}
	}
	return d.Storage.Cleanup()
}
