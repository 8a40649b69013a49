package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ventureforge/internal/domain"
	"ventureforge/internal/events"
)

// paymentCurrency is the fixed settlement currency.
const paymentCurrency = "usd"

// defaultGatewayTimeout bounds every call to the external gateway.
const defaultGatewayTimeout = 15 * time.Second

// IntentResult is returned to the client after a payment intent is
// created: the gateway's client-side confirmation handle and the
// internal payment id. The gateway's full response is never exposed.
type IntentResult struct {
	ClientSecret string
	PaymentID    string
}

// PaymentService is the single entry point for turning a priced idea
// into a completed payment, exactly once.
type PaymentService interface {
	CreateIntent(ctx context.Context, actor domain.Actor, ideaID, country string) (*IntentResult, error)
	Confirm(ctx context.Context, intentID string) (*domain.Payment, error)
	History(ctx context.Context, actor domain.Actor) ([]domain.PaymentWithIdea, error)
}

type paymentService struct {
	ideas          domain.IdeaRepository
	payments       domain.PaymentRepository
	gateway        domain.PaymentGateway
	events         events.Publisher
	logger         zerolog.Logger
	gatewayTimeout time.Duration
}

// NewPaymentService wires the payment reconciliation engine.
func NewPaymentService(
	ideas domain.IdeaRepository,
	payments domain.PaymentRepository,
	gateway domain.PaymentGateway,
	publisher events.Publisher,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		ideas:          ideas,
		payments:       payments,
		gateway:        gateway,
		events:         publisher,
		logger:         logger,
		gatewayTimeout: defaultGatewayTimeout,
	}
}

// CreateIntent validates ownership and the absence of a completed
// payment, creates a gateway intent for the idea's price and persists a
// PENDING payment recording the intent id.
//
// Concurrent calls for the same idea may each pass the duplicate check
// while no payment is completed yet; the gateway is the authority for
// double-charge prevention. Local state only prevents confirming twice.
func (s *paymentService) CreateIntent(ctx context.Context, actor domain.Actor, ideaID, country string) (*IntentResult, error) {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if actor.ID != idea.UserID {
		return nil, domain.ErrPermissionDenied
	}

	completed, err := s.payments.HasCompletedForIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("check completed payments: %w", err)
	}
	if completed {
		return nil, domain.ErrDuplicatePayment
	}

	gwCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	intent, err := s.gateway.CreateIntent(gwCtx, idea.Price*100, paymentCurrency, map[string]string{
		"idea_id": idea.ID,
		"user_id": actor.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("idea_id", ideaID).Msg("gateway create intent failed")
		return nil, fmt.Errorf("%w: create intent: %v", domain.ErrGateway, err)
	}

	payment := &domain.Payment{
		ID:              uuid.NewString(),
		Amount:          idea.Price,
		Currency:        paymentCurrency,
		Status:          domain.PaymentStatusPending,
		StripePaymentID: intent.ID,
		Country:         country,
		UserID:          actor.ID,
		IdeaID:          idea.ID,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("idea_id", idea.ID).
		Str("intent_id", intent.ID).
		Int64("amount", payment.Amount).
		Msg("payment intent created")
	return &IntentResult{ClientSecret: intent.ClientSecret, PaymentID: payment.ID}, nil
}

// Confirm reconciles a gateway intent with local state. It is safe to
// call more than once for the same intent: a payment that is already
// COMPLETED is returned as-is without re-triggering the idea transition.
func (s *paymentService) Confirm(ctx context.Context, intentID string) (*domain.Payment, error) {
	gwCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	intent, err := s.gateway.RetrieveIntent(gwCtx, intentID)
	if err != nil {
		s.logger.Error().Err(err).Str("intent_id", intentID).Msg("gateway retrieve intent failed")
		return nil, fmt.Errorf("%w: retrieve intent: %v", domain.ErrGateway, err)
	}
	if intent.Status != domain.IntentStatusSucceeded {
		return nil, fmt.Errorf("%w: intent status %q", domain.ErrPaymentNotCompleted, intent.Status)
	}

	payment, err := s.payments.GetByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Intents are only created through CreateIntent, so a missing
			// row indicates drift between gateway and store.
			s.logger.Warn().Str("intent_id", intentID).Msg("succeeded intent has no local payment")
		}
		return nil, err
	}
	if payment.Status == domain.PaymentStatusCompleted {
		return payment, nil
	}

	payment, transitioned, err := s.payments.Complete(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("complete payment: %w", err)
	}
	if transitioned {
		s.logger.Info().
			Str("payment_id", payment.ID).
			Str("idea_id", payment.IdeaID).
			Msg("payment completed, idea moved to review")
		if err := s.events.Publish(ctx, payment.IdeaID, events.Event{
			Type: events.TypePaymentCompleted,
			Payload: map[string]any{
				"payment_id": payment.ID,
				"idea_id":    payment.IdeaID,
				"user_id":    payment.UserID,
				"amount":     payment.Amount,
				"currency":   payment.Currency,
			},
		}); err != nil {
			s.logger.Error().Err(err).Str("payment_id", payment.ID).Msg("publish payment completed failed")
		}
	}
	return payment, nil
}

// History returns the caller's payments joined with idea title and
// tier, newest first. The scope is always the caller, including for
// admins.
func (s *paymentService) History(ctx context.Context, actor domain.Actor) ([]domain.PaymentWithIdea, error) {
	return s.payments.ListByUser(ctx, actor.ID)
}
