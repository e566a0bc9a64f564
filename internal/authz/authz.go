// Package authz is the single authorization predicate for every content type.
// Handlers and services call these three functions instead of re-deriving role
// checks at each call site.
package authz

import (
	"loreforge/internal/apperr"
	"loreforge/internal/models"
)

// Owned is any resource with an owning author. Resources that return an empty
// owner (Race) are writable by admins only.
type Owned interface {
	OwnerID() string
}

// Publishable is a resource with a draft/published flag (Story, DevblogPost).
type Publishable interface {
	IsPublished() bool
}

// CanRead reports whether viewer may see the resource. Everything without a
// publish flag is public; drafts are visible to their author and to admins.
// A nil viewer is an anonymous caller.
func CanRead(viewer *models.User, resource any) bool {
	p, ok := resource.(Publishable)
	if !ok || p.IsPublished() {
		return true
	}
	if viewer == nil {
		return false
	}
	if viewer.IsAdmin() {
		return true
	}
	o, ok := resource.(Owned)
	return ok && o.OwnerID() == viewer.ID
}

// CanWrite returns nil if viewer may mutate the resource,
// apperr.ErrUnauthorized for anonymous callers and apperr.ErrForbidden for
// authenticated callers who are neither admin nor the owner.
func CanWrite(viewer *models.User, resource Owned) error {
	if viewer == nil {
		return apperr.ErrUnauthorized
	}
	if viewer.IsAdmin() {
		return nil
	}
	if owner := resource.OwnerID(); owner != "" && owner == viewer.ID {
		return nil
	}
	return apperr.ErrForbidden
}

// CanDelete is admin-only for every content type.
func CanDelete(viewer *models.User, resource Owned) error {
	if viewer == nil {
		return apperr.ErrUnauthorized
	}
	if !viewer.IsAdmin() {
		return apperr.ErrForbidden
	}
	return nil
}
