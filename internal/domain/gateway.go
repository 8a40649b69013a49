package domain

import "context"

// IntentStatusSucceeded is the gateway intent status that permits
// reconciliation. Any other status leaves local state untouched.
const IntentStatusSucceeded = "succeeded"

// Intent is the gateway-side record of an authorized-but-not-yet-settled
// charge. Amounts are in the gateway's minor units.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
}

// PaymentGateway abstracts the external payment processor so the
// reconciliation engine stays testable with in-memory fakes.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
