package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/backend/internal/setup"
	mw "github.com/openforum-dev/forumapi/shared/middleware"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
)

// New creates and configures a chi router with all the routes.
// Limiters attached with Use count requests of every route in that group together.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(mw.RequestLogger)
	r.Use(mw.SecurityHeaders(false))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler
	needAuth := middleware.NeedAuth(deps.Auth)

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/users", h.Register)

	r.Route("/authentications", func(r chi.Router) {
		r.With(middleware.RateLimit(deps.LoginLimiter, middleware.GetIP)).Post("/", h.Login)
		r.Put("/", h.Refresh)
		r.Delete("/", h.Logout)
	})

	r.Get("/threads/{threadId}", h.GetThread)

	r.Group(func(r chi.Router) {
		r.Use(needAuth)
		r.Use(middleware.RateLimit(deps.WriteLimiter, middleware.GetUserIdFromContext))

		r.Post("/threads", h.AddThread)
		r.Route("/threads/{threadId}/comments", func(r chi.Router) {
			r.Post("/", h.AddComment)
			r.Delete("/{commentId}", h.DeleteComment)
			r.Put("/{commentId}/likes", h.ToggleLike)
			r.Post("/{commentId}/replies", h.AddReply)
			r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
