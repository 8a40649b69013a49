package handlers

import (
	"net/http"

	"ventureforge/internal/access"
)

// Profile returns the caller's account with its idea count.
func (a *App) Profile(w http.ResponseWriter, r *http.Request) {
	actor := a.actor(r)
	if actor.ID == "" {
		a.fail(w, http.StatusUnauthorized, "missing user context")
		return
	}
	user, err := a.Users.GetByID(r.Context(), actor.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}

// ListUsers is the admin account listing.
func (a *App) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !access.IsAdmin(a.actor(r)) {
		a.fail(w, http.StatusForbidden, "admin access required")
		return
	}

	users, err := a.Users.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]userDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	a.json(w, http.StatusOK, out)
}
