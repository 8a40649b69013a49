// Package handlers holds the HTTP surface of the service. Every
// response uses the {success, data, error} envelope.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"ventureforge/internal/domain"
	"ventureforge/internal/infra/geoip"
	"ventureforge/internal/middleware"
	"ventureforge/internal/service"
)

// App carries the dependencies shared by all HTTP handlers.
type App struct {
	Ideas     service.IdeaService
	Payments  service.PaymentService
	Users     domain.UserRepository
	Portfolio domain.PortfolioRepository
	Geo       geoip.CountryResolver
	Logger    zerolog.Logger

	JWTSecret           string
	StripeWebhookSecret string
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func (a *App) fail(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// domainError translates service errors into HTTP responses. Unknown
// errors are logged and masked as 500.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownTier),
		errors.Is(err, domain.ErrDuplicatePayment),
		errors.Is(err, domain.ErrPaymentNotCompleted),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrEmailTaken):
		a.fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrPermissionDenied):
		a.fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrGateway):
		a.fail(w, http.StatusBadGateway, "payment gateway error")
	default:
		a.Logger.Error().Err(err).Msg("unhandled error")
		a.fail(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *App) actor(r *http.Request) domain.Actor {
	return middleware.ActorFromContext(r.Context())
}
