// Package auth defines the resolved caller identity and its role checks.
// A Principal is built by the HTTP auth middleware from a verified bearer
// token and passed explicitly into every service call; the core never reads
// identity from an ambient singleton or from request payloads.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
)

// RoleAdmin grants access to other users' tasks on the by-id read and on
// update/delete. It never widens list queries.
const RoleAdmin = "admin"

// Compile-time check that Principal is a ValueObject.
var _ domain.ValueObject = Principal{}

// Principal is the verified identity of the requesting user. It is a value
// object: two principals with the same id and role sequence are equal.
type Principal struct {
	ID    uuid.UUID
	Roles []string
}

// HasRole reports whether the principal carries the named role.
func (p Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// EqualityComponents implements domain.ValueObject: the id followed by the
// roles in order.
func (p Principal) EqualityComponents() []any {
	components := make([]any, 0, 1+len(p.Roles))
	components = append(components, p.ID)
	for _, r := range p.Roles {
		components = append(components, r)
	}
	return components
}

// principalKey is the unexported context key for the transport layer.
type principalKey struct{}

// WithPrincipal returns a new context carrying the principal. Only the HTTP
// adapter stores principals in context; services receive them as arguments.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext extracts the principal stored by the auth middleware.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
