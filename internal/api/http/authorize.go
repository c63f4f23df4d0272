package http

import (
	"errors"
	"net/http"
	"slices"

	"tutoring-center-backend/internal/config"
	"tutoring-center-backend/internal/domain"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient role for this operation")
)

// Authorize checks the caller against the roles a route requires
func Authorize(p *Principal, required []domain.Role) error {
	if p == nil {
		return ErrUnauthorized
	}
	if !slices.Contains(required, p.Role) {
		return ErrForbidden
	}
	return nil
}

// requirePolicy runs Authorize with the route's policy before next
func requirePolicy(route string, next http.HandlerFunc) http.HandlerFunc {
	required := config.RequiredRoles(route)
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := PrincipalFromContext(r.Context())
		if err := Authorize(p, required); err != nil {
			writeError(w, r, err)
			return
		}
		next(w, r)
	}
}
