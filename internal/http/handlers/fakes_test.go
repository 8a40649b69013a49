package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"

	"ventureforge/internal/domain"
	"ventureforge/internal/service"
)

func jsonDecode(rr *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(rr.Body).Decode(v)
}

type fakeIdeaService struct {
	createFn    func(ctx context.Context, actor domain.Actor, in service.CreateIdeaInput) (*domain.Idea, error)
	getFn       func(ctx context.Context, actor domain.Actor, id string) (*domain.IdeaDetail, error)
	listFn      func(ctx context.Context, actor domain.Actor) ([]domain.IdeaListItem, error)
	setStatusFn func(ctx context.Context, actor domain.Actor, id string, status domain.IdeaStatus) (*domain.Idea, error)
}

func (f *fakeIdeaService) Create(ctx context.Context, actor domain.Actor, in service.CreateIdeaInput) (*domain.Idea, error) {
	return f.createFn(ctx, actor, in)
}

func (f *fakeIdeaService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.IdeaDetail, error) {
	return f.getFn(ctx, actor, id)
}

func (f *fakeIdeaService) List(ctx context.Context, actor domain.Actor) ([]domain.IdeaListItem, error) {
	return f.listFn(ctx, actor)
}

func (f *fakeIdeaService) SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.IdeaStatus) (*domain.Idea, error) {
	return f.setStatusFn(ctx, actor, id, status)
}

type fakePaymentService struct {
	createIntentFn func(ctx context.Context, actor domain.Actor, ideaID, country string) (*service.IntentResult, error)
	confirmFn      func(ctx context.Context, intentID string) (*domain.Payment, error)
	historyFn      func(ctx context.Context, actor domain.Actor) ([]domain.PaymentWithIdea, error)
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, actor domain.Actor, ideaID, country string) (*service.IntentResult, error) {
	return f.createIntentFn(ctx, actor, ideaID, country)
}

func (f *fakePaymentService) Confirm(ctx context.Context, intentID string) (*domain.Payment, error) {
	return f.confirmFn(ctx, intentID)
}

func (f *fakePaymentService) History(ctx context.Context, actor domain.Actor) ([]domain.PaymentWithIdea, error) {
	return f.historyFn(ctx, actor)
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	cp := *user
	f.byEmail[user.Email] = &cp
	f.byID[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

type fakePortfolioRepo struct {
	items      []domain.PortfolioItem
	lastFilter domain.PortfolioFilter
}

func (f *fakePortfolioRepo) List(_ context.Context, filter domain.PortfolioFilter) ([]domain.PortfolioItem, error) {
	f.lastFilter = filter
	return f.items, nil
}

func (f *fakePortfolioRepo) GetByID(_ context.Context, id string) (*domain.PortfolioItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
