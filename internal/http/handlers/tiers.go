package handlers

import (
	"net/http"

	"ventureforge/internal/domain"
)

// ListTiers returns the public service tier catalog.
func (a *App) ListTiers(w http.ResponseWriter, r *http.Request) {
	tiers := domain.Tiers()
	out := make([]tierDTO, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, toTierDTO(t))
	}
	a.json(w, http.StatusOK, out)
}
