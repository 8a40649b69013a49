package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ventureforge/internal/domain"
	"ventureforge/internal/events"
)

type fakeIdeaRepo struct {
	ideas     map[string]*domain.Idea
	createErr error
}

func newFakeIdeaRepo() *fakeIdeaRepo {
	return &fakeIdeaRepo{ideas: map[string]*domain.Idea{}}
}

func (f *fakeIdeaRepo) Create(_ context.Context, idea *domain.Idea) error {
	if f.createErr != nil {
		return f.createErr
	}
	now := time.Now().UTC()
	idea.CreatedAt = now
	idea.UpdatedAt = now
	stored := *idea
	f.ideas[idea.ID] = &stored
	return nil
}

func (f *fakeIdeaRepo) GetByID(_ context.Context, id string) (*domain.Idea, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *idea
	return &cp, nil
}

func (f *fakeIdeaRepo) GetDetail(ctx context.Context, id string) (*domain.IdeaDetail, error) {
	idea, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.IdeaDetail{Idea: *idea}, nil
}

func (f *fakeIdeaRepo) List(_ context.Context) ([]domain.IdeaListItem, error) {
	var items []domain.IdeaListItem
	for _, idea := range f.ideas {
		items = append(items, domain.IdeaListItem{Idea: *idea})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (f *fakeIdeaRepo) ListByOwner(ctx context.Context, userID string) ([]domain.IdeaListItem, error) {
	all, _ := f.List(ctx)
	var items []domain.IdeaListItem
	for _, item := range all {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeIdeaRepo) UpdateStatus(_ context.Context, id string, status domain.IdeaStatus) (*domain.Idea, error) {
	idea, ok := f.ideas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	idea.Status = status
	idea.UpdatedAt = time.Now().UTC()
	cp := *idea
	return &cp, nil
}

type fakePaymentRepo struct {
	payments    map[string]*domain.Payment // keyed by gateway intent id
	ideas       *fakeIdeaRepo
	transitions int
	onComplete  func() // invoked at the start of Complete, for race simulation
}

func newFakePaymentRepo(ideas *fakeIdeaRepo) *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*domain.Payment{}, ideas: ideas}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	stored := *payment
	f.payments[payment.StripePaymentID] = &stored
	return nil
}

func (f *fakePaymentRepo) GetByIntentID(_ context.Context, intentID string) (*domain.Payment, error) {
	payment, ok := f.payments[intentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *payment
	return &cp, nil
}

func (f *fakePaymentRepo) HasCompletedForIdea(_ context.Context, ideaID string) (bool, error) {
	for _, payment := range f.payments {
		if payment.IdeaID == ideaID && payment.Status == domain.PaymentStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepo) Complete(_ context.Context, intentID string) (*domain.Payment, bool, error) {
	if f.onComplete != nil {
		f.onComplete()
	}
	payment, ok := f.payments[intentID]
	if !ok {
		return nil, false, domain.ErrNotFound
	}
	if payment.Status == domain.PaymentStatusCompleted {
		cp := *payment
		return &cp, false, nil
	}
	payment.Status = domain.PaymentStatusCompleted
	payment.UpdatedAt = time.Now().UTC()
	if idea, ok := f.ideas.ideas[payment.IdeaID]; ok {
		idea.Status = domain.IdeaStatusInReview
	}
	f.transitions++
	cp := *payment
	return &cp, true, nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, userID string) ([]domain.PaymentWithIdea, error) {
	var items []domain.PaymentWithIdea
	for _, payment := range f.payments {
		if payment.UserID != userID {
			continue
		}
		item := domain.PaymentWithIdea{Payment: *payment}
		if idea, ok := f.ideas.ideas[payment.IdeaID]; ok {
			item.IdeaTitle = idea.Title
			item.IdeaTier = idea.Tier
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

type fakeGateway struct {
	intents      map[string]*domain.Intent
	createErr    error
	retrieveErr  error
	lastAmount   int64
	lastCurrency string
	lastMetadata map[string]string
	created      int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: map[string]*domain.Intent{}}
}

func (f *fakeGateway) CreateIntent(_ context.Context, amountMinor int64, currency string, metadata map[string]string) (*domain.Intent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created++
	f.lastAmount = amountMinor
	f.lastCurrency = currency
	f.lastMetadata = metadata
	intent := &domain.Intent{
		ID:           fmt.Sprintf("pi_%03d", f.created),
		ClientSecret: fmt.Sprintf("pi_%03d_secret", f.created),
		Status:       "requires_payment_method",
		Amount:       amountMinor,
		Currency:     currency,
	}
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakeGateway) RetrieveIntent(_ context.Context, id string) (*domain.Intent, error) {
	if f.retrieveErr != nil {
		return nil, f.retrieveErr
	}
	intent, ok := f.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such intent: %s", id)
	}
	cp := *intent
	return &cp, nil
}

type recordedEvent struct {
	key   string
	event events.Event
}

type recordingPublisher struct {
	published []recordedEvent
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, recordedEvent{key: key, event: event})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }
