package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutoring-center-backend/internal/domain"
)

func TestAuthorize(t *testing.T) {
	adminOnly := []domain.Role{domain.RoleAdmin}

	assert.ErrorIs(t, Authorize(nil, adminOnly), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(&Principal{UserID: 1, Role: domain.RoleStudent}, adminOnly), ErrForbidden)
	assert.NoError(t, Authorize(&Principal{UserID: 1, Role: domain.RoleAdmin}, adminOnly))
	assert.ErrorIs(t, Authorize(&Principal{UserID: 1, Role: domain.RoleAdmin}, nil), ErrForbidden)
}
