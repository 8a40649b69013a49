package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ventureforge/internal/domain"
)

// ListPortfolio returns published case studies. Industry, tier and
// featured query params narrow the listing.
func (a *App) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	filter := domain.PortfolioFilter{
		Industry: r.URL.Query().Get("industry"),
		Tier:     domain.ServiceTier(r.URL.Query().Get("tier")),
	}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			a.fail(w, http.StatusBadRequest, "featured must be a boolean")
			return
		}
		filter.Featured = &featured
	}

	items, err := a.Portfolio.List(r.Context(), filter)
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]portfolioItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toPortfolioItemDTO(it))
	}
	a.json(w, http.StatusOK, out)
}

// GetPortfolioItem returns a single case study.
func (a *App) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.Portfolio.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toPortfolioItemDTO(*item))
}
