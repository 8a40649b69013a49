package domain

import "time"

// PaymentStatus enumerates payment lifecycle states.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment records a charge attempt for an idea. Many payments may
// exist per idea across retries, but at most one ever reaches
// COMPLETED. A payment is immutable once COMPLETED or REFUNDED.
type Payment struct {
	ID              string
	Amount          int64
	Currency        string
	Status          PaymentStatus
	StripePaymentID string
	Country         string // best-effort payer country at intent creation
	UserID          string
	IdeaID          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PaymentWithIdea is a payment joined with its idea's title and tier,
// as returned by payment history.
type PaymentWithIdea struct {
	Payment
	IdeaTitle string
	IdeaTier  ServiceTier
}
