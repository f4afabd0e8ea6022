package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/accounts-backend/internal/api/handlers"
	"github.com/baharkarakas/accounts-backend/internal/metrics"
	"github.com/baharkarakas/accounts-backend/internal/middleware"
)

type RouterDeps struct {
	Env      string
	RateRPS  int
	Tokens   middleware.TokenParser
	Accounts *handlers.AccountHandler
	Users    *handlers.UserHandler
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionGate(d.Tokens, d.Env))

		r.Post("/register", d.Accounts.Register)

		r.Route("/user", func(r chi.Router) {
			r.Put("/password", d.Users.ChangePassword)
			r.Put("/profile", d.Users.UpdateProfile)
			r.Get("/settings", d.Users.GetSettings)
			r.Put("/settings", d.Users.UpdateSettings)
			r.Get("/security-logs", d.Users.SecurityLogs)
		})
	})

	return r
}
