// Package access holds the authorization predicates gating mutating and
// detail-fetching operations. Roles are explicit values carried by the
// actor; there is no inheritance or runtime type inspection.
package access

import "ventureforge/internal/domain"

// IsAdmin reports whether the actor holds the admin role.
func IsAdmin(actor domain.Actor) bool {
	return actor.Role == domain.RoleAdmin
}

// IsOwnerOrAdmin reports whether the actor owns the resource or is an
// admin. Callers check resource existence before invoking this, so a
// missing resource never leaks authorization rules.
func IsOwnerOrAdmin(actor domain.Actor, ownerID string) bool {
	if IsAdmin(actor) {
		return true
	}
	return actor.ID != "" && actor.ID == ownerID
}
