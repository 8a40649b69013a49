package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ventureforge/internal/domain"
	"ventureforge/internal/middleware"
	"ventureforge/internal/service"
)

func withActor(req *http.Request, actor domain.Actor) *http.Request {
	return req.WithContext(middleware.ContextWithActor(req.Context(), actor))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateIdeaReturnsCreated(t *testing.T) {
	var gotInput service.CreateIdeaInput
	app := &App{
		Logger: zerolog.Nop(),
		Ideas: &fakeIdeaService{
			createFn: func(_ context.Context, actor domain.Actor, in service.CreateIdeaInput) (*domain.Idea, error) {
				gotInput = in
				return &domain.Idea{
					ID:     "idea-1",
					Title:  in.Title,
					Tier:   in.Tier,
					Price:  2999,
					Status: domain.IdeaStatusSubmitted,
					UserID: actor.ID,
				}, nil
			},
		},
	}

	body := `{"title":"Meal kits","description":"Weekly boxes","industry":"Food","tier":"BLUEPRINT"}`
	req := withActor(httptest.NewRequest("POST", "/api/ideas", strings.NewReader(body)), domain.Actor{ID: "user-1", Role: domain.RoleClient})
	rr := httptest.NewRecorder()
	app.CreateIdea(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if gotInput.Tier != domain.TierBlueprint {
		t.Fatalf("tier = %q, want BLUEPRINT", gotInput.Tier)
	}
	_, data, _ := decodeEnvelope(t, rr)
	if data["price"] != float64(2999) {
		t.Fatalf("price = %v, want 2999", data["price"])
	}
	if data["userId"] != "user-1" {
		t.Fatalf("userId = %v, want user-1", data["userId"])
	}
}

func TestCreateIdeaRejectsBadJSON(t *testing.T) {
	app := &App{Logger: zerolog.Nop(), Ideas: &fakeIdeaService{}}
	rr := httptest.NewRecorder()
	app.CreateIdea(rr, httptest.NewRequest("POST", "/api/ideas", strings.NewReader("{")))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateIdeaMapsValidationError(t *testing.T) {
	app := &App{
		Logger: zerolog.Nop(),
		Ideas: &fakeIdeaService{
			createFn: func(context.Context, domain.Actor, service.CreateIdeaInput) (*domain.Idea, error) {
				return nil, domain.ErrUnknownTier
			},
		},
	}
	rr := httptest.NewRecorder()
	app.CreateIdea(rr, httptest.NewRequest("POST", "/api/ideas", strings.NewReader(`{"title":"x","tier":"GOLD"}`)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	success, _, msg := decodeEnvelope(t, rr)
	if success || msg == "" {
		t.Fatalf("expected failure envelope with error, got success=%v error=%q", success, msg)
	}
}

func TestGetIdeaNotFound(t *testing.T) {
	app := &App{
		Logger: zerolog.Nop(),
		Ideas: &fakeIdeaService{
			getFn: func(context.Context, domain.Actor, string) (*domain.IdeaDetail, error) {
				return nil, domain.ErrNotFound
			},
		},
	}
	req := withURLParam(httptest.NewRequest("GET", "/api/ideas/missing", nil), "id", "missing")
	rr := httptest.NewRecorder()
	app.GetIdea(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGetIdeaIncludesRelations(t *testing.T) {
	app := &App{
		Logger: zerolog.Nop(),
		Ideas: &fakeIdeaService{
			getFn: func(_ context.Context, _ domain.Actor, id string) (*domain.IdeaDetail, error) {
				return &domain.IdeaDetail{
					Idea:  domain.Idea{ID: id, Title: "Meal kits", Status: domain.IdeaStatusInReview},
					Owner: domain.IdeaOwner{ID: "user-1", Name: "Ada", Email: "a@b.com", Role: domain.RoleClient},
				}, nil
			},
		},
	}
	req := withURLParam(httptest.NewRequest("GET", "/api/ideas/idea-1", nil), "id", "idea-1")
	rr := httptest.NewRecorder()
	app.GetIdea(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	_, data, _ := decodeEnvelope(t, rr)
	if data["deliverables"] == nil || data["payments"] == nil || data["messages"] == nil {
		t.Fatalf("relations must be present even when empty, got %v", data)
	}
	user, _ := data["user"].(map[string]any)
	if user["name"] != "Ada" {
		t.Fatalf("owner name = %v, want Ada", user["name"])
	}
}

func TestUpdateIdeaStatusRequiresStatus(t *testing.T) {
	app := &App{Logger: zerolog.Nop(), Ideas: &fakeIdeaService{}}
	req := withURLParam(httptest.NewRequest("PUT", "/api/ideas/idea-1/status", strings.NewReader(`{}`)), "id", "idea-1")
	rr := httptest.NewRecorder()
	app.UpdateIdeaStatus(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestUpdateIdeaStatusForbiddenForNonAdmin(t *testing.T) {
	app := &App{
		Logger: zerolog.Nop(),
		Ideas: &fakeIdeaService{
			setStatusFn: func(context.Context, domain.Actor, string, domain.IdeaStatus) (*domain.Idea, error) {
				return nil, domain.ErrPermissionDenied
			},
		},
	}
	req := withURLParam(httptest.NewRequest("PUT", "/api/ideas/idea-1/status", strings.NewReader(`{"status":"IN_PROGRESS"}`)), "id", "idea-1")
	rr := httptest.NewRecorder()
	app.UpdateIdeaStatus(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestListIdeasReturnsCounts(t *testing.T) {
	app := &App{
		Logger: zerolog.Nop(),
		Ideas: &fakeIdeaService{
			listFn: func(context.Context, domain.Actor) ([]domain.IdeaListItem, error) {
				return []domain.IdeaListItem{{
					Idea:             domain.Idea{ID: "idea-1", Title: "Meal kits"},
					Owner:            domain.IdeaOwner{ID: "user-1", Name: "Ada"},
					DeliverableCount: 2,
					PaymentCount:     1,
				}}, nil
			},
		},
	}
	rr := httptest.NewRecorder()
	app.ListIdeas(rr, httptest.NewRequest("GET", "/api/ideas", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := jsonDecode(rr, &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("items = %d, want 1", len(env.Data))
	}
	counts, _ := env.Data[0]["_count"].(map[string]any)
	if counts["deliverables"] != float64(2) {
		t.Fatalf("deliverable count = %v, want 2", counts["deliverables"])
	}
}
