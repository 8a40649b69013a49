package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ventureforge/internal/access"
	"ventureforge/internal/domain"
	"ventureforge/internal/events"
)

// CreateIdeaInput carries the client-supplied fields of an idea
// submission. Price is deliberately absent: it is derived from the tier
// catalog and never accepted from the caller.
type CreateIdeaInput struct {
	Title          string
	Description    string
	Industry       string
	TargetAudience string
	Tier           domain.ServiceTier
}

// IdeaService owns the idea lifecycle.
type IdeaService interface {
	Create(ctx context.Context, actor domain.Actor, in CreateIdeaInput) (*domain.Idea, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.IdeaDetail, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.IdeaListItem, error)
	SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.IdeaStatus) (*domain.Idea, error)
}

type ideaService struct {
	ideas  domain.IdeaRepository
	events events.Publisher
	logger zerolog.Logger
}

// NewIdeaService wires the idea lifecycle manager.
func NewIdeaService(ideas domain.IdeaRepository, publisher events.Publisher, logger zerolog.Logger) IdeaService {
	return &ideaService{ideas: ideas, events: publisher, logger: logger}
}

// Create validates the submission, derives the price from the tier
// catalog and persists the idea in SUBMITTED state.
func (s *ideaService) Create(ctx context.Context, actor domain.Actor, in CreateIdeaInput) (*domain.Idea, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Industry) == "" ||
		in.Tier == "" {
		return nil, fmt.Errorf("%w: title, description, industry, and tier are required", domain.ErrValidation)
	}

	price, err := domain.PriceFor(in.Tier)
	if err != nil {
		return nil, err
	}

	idea := &domain.Idea{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Industry:    strings.TrimSpace(in.Industry),
		Tier:        in.Tier,
		Price:       price,
		Status:      domain.IdeaStatusSubmitted,
		UserID:      actor.ID,
	}
	if audience := strings.TrimSpace(in.TargetAudience); audience != "" {
		idea.TargetAudience = &audience
	}

	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}
	s.logger.Info().Str("idea_id", idea.ID).Str("tier", string(idea.Tier)).Int64("price", idea.Price).Msg("idea submitted")
	return idea, nil
}

// Get returns an idea with its deliverables, payments and messages.
// Existence is checked before authorization.
func (s *ideaService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.IdeaDetail, error) {
	detail, err := s.ideas.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.IsOwnerOrAdmin(actor, detail.UserID) {
		return nil, domain.ErrPermissionDenied
	}
	return detail, nil
}

// List returns all ideas for admins and only owned ideas otherwise,
// newest first.
func (s *ideaService) List(ctx context.Context, actor domain.Actor) ([]domain.IdeaListItem, error) {
	if access.IsAdmin(actor) {
		return s.ideas.List(ctx)
	}
	return s.ideas.ListByOwner(ctx, actor.ID)
}

// SetStatus is the admin-only manual transition. The target status is
// validated by enum membership only; any enumerated status is reachable
// from any state.
func (s *ideaService) SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.IdeaStatus) (*domain.Idea, error) {
	if !access.IsAdmin(actor) {
		return nil, domain.ErrPermissionDenied
	}
	if !domain.ValidIdeaStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTransition, status)
	}

	idea, err := s.ideas.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, idea.ID, events.Event{
		Type: events.TypeIdeaStatusChanged,
		Payload: map[string]any{
			"idea_id": idea.ID,
			"status":  idea.Status,
			"actor":   actor.ID,
		},
	}); err != nil {
		s.logger.Error().Err(err).Str("idea_id", idea.ID).Msg("publish status change failed")
	}
	return idea, nil
}
