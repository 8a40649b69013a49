package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ventureforge/internal/domain"
	"ventureforge/internal/service"
)

type createIdeaRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Industry       string `json:"industry"`
	TargetAudience string `json:"targetAudience"`
	Tier           string `json:"tier"`
}

type updateIdeaStatusRequest struct {
	Status string `json:"status"`
}

// CreateIdea submits a new idea for the authenticated client.
func (a *App) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}

	idea, err := a.Ideas.Create(r.Context(), a.actor(r), service.CreateIdeaInput{
		Title:          req.Title,
		Description:    req.Description,
		Industry:       req.Industry,
		TargetAudience: req.TargetAudience,
		Tier:           domain.ServiceTier(req.Tier),
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toIdeaDTO(idea))
}

// ListIdeas returns all ideas for admins and owned ideas for clients.
func (a *App) ListIdeas(w http.ResponseWriter, r *http.Request) {
	items, err := a.Ideas.List(r.Context(), a.actor(r))
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]ideaListItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toIdeaListItemDTO(it))
	}
	a.json(w, http.StatusOK, out)
}

// GetIdea returns one idea with deliverables, payments and messages.
func (a *App) GetIdea(w http.ResponseWriter, r *http.Request) {
	detail, err := a.Ideas.Get(r.Context(), a.actor(r), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toIdeaDetailDTO(detail))
}

// UpdateIdeaStatus is the admin transition endpoint.
func (a *App) UpdateIdeaStatus(w http.ResponseWriter, r *http.Request) {
	var req updateIdeaStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		a.fail(w, http.StatusBadRequest, "status is required")
		return
	}

	idea, err := a.Ideas.SetStatus(r.Context(), a.actor(r), chi.URLParam(r, "id"), domain.IdeaStatus(req.Status))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toIdeaDTO(idea))
}
