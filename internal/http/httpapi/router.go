package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ventureforge/internal/http/handlers"
	"ventureforge/internal/infra"
	"ventureforge/internal/middleware"
)

// NewRouter assembles the HTTP routing table.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS([]string{cfg.FrontendURL}),
		middleware.RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow),
	)

	auth := middleware.AuthJWT(cfg.JWTSecret)

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)

		r.Post("/auth/register", app.Register)
		r.Post("/auth/login", app.Login)
		r.With(auth).Get("/auth/me", app.Me)

		r.Get("/tiers", app.ListTiers)

		r.Get("/portfolio", app.ListPortfolio)
		r.Get("/portfolio/{id}", app.GetPortfolioItem)

		r.Route("/ideas", func(r chi.Router) {
			r.Use(auth)
			r.Post("/", app.CreateIdea)
			r.Get("/", app.ListIdeas)
			r.Get("/{id}", app.GetIdea)
			r.Put("/{id}/status", app.UpdateIdeaStatus)
		})

		r.Route("/payments", func(r chi.Router) {
			// Webhook authenticates by signature, not bearer token.
			r.Post("/webhook", app.StripeWebhook)

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/create-intent", app.CreatePaymentIntent)
				r.Post("/confirm", app.ConfirmPayment)
				r.Get("/history", app.PaymentHistory)
			})
		})

		r.With(auth).Get("/users", app.ListUsers)
		r.With(auth).Get("/users/profile", app.Profile)
	})

	return r
}
