// Package stripegw adapts Stripe to the domain.PaymentGateway contract.
// Only the narrow intent surface the reconciliation engine needs is
// exposed; errors are returned raw and classified by the caller.
package stripegw

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"ventureforge/internal/domain"
)

// Gateway wraps a Stripe API client.
type Gateway struct {
	api *client.API
}

// New builds a gateway authenticated with the given secret key.
func New(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// CreateIntent creates a payment intent for the given minor-unit amount.
func (g *Gateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*domain.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return intentFromStripe(pi), nil
}

// RetrieveIntent fetches the current state of a payment intent.
func (g *Gateway) RetrieveIntent(ctx context.Context, id string) (*domain.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, err
	}
	return intentFromStripe(pi), nil
}

func intentFromStripe(pi *stripe.PaymentIntent) *domain.Intent {
	return &domain.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}
}

var _ domain.PaymentGateway = (*Gateway)(nil)
