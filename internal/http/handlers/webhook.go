package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v82"

	"ventureforge/internal/domain"
	"ventureforge/internal/gateway/stripegw"
)

const maxWebhookBodyBytes = 1 << 20

// StripeWebhook handles signed gateway notifications. Signature
// verification is the only authentication on this route.
func (a *App) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	if a.StripeWebhookSecret == "" {
		a.fail(w, http.StatusServiceUnavailable, "webhook not configured")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		a.fail(w, http.StatusBadRequest, "unable to read body")
		return
	}

	event, err := stripegw.VerifyEvent(payload, r.Header.Get("Stripe-Signature"), a.StripeWebhookSecret)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("webhook signature verification failed")
		a.fail(w, http.StatusBadRequest, "invalid signature")
		return
	}

	if event.Type == "payment_intent.succeeded" {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			a.Logger.Error().Err(err).Msg("webhook payload unmarshal failed")
			a.fail(w, http.StatusBadRequest, "invalid event payload")
			return
		}

		if _, err := a.Payments.Confirm(r.Context(), pi.ID); err != nil {
			// Gateway and storage failures are transient, so a retry is
			// requested. Anything else will not succeed on redelivery.
			if errors.Is(err, domain.ErrGateway) ||
				(!errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrPaymentNotCompleted)) {
				a.Logger.Error().Err(err).Str("intent_id", pi.ID).Msg("webhook confirm failed")
				a.fail(w, http.StatusInternalServerError, "confirmation failed")
				return
			}
			a.Logger.Warn().Err(err).Str("intent_id", pi.ID).Msg("webhook confirm skipped")
		}
	}

	a.json(w, http.StatusOK, map[string]bool{"received": true})
}
