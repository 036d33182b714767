package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
)

func TestTaxonomia_NomesEStatus(t *testing.T) {
	cases := []struct {
		err        *domain.Error
		wantName   string
		wantStatus int
	}{
		{domain.NewValidationError("m", "a"), "ValidationError", http.StatusBadRequest},
		{domain.NewUnauthorizedError("m", "a"), "UnauthorizedError", http.StatusUnauthorized},
		{domain.NewForbiddenError("m", "a"), "ForbiddenError", http.StatusForbidden},
		{domain.NewNotFoundError("m", "a"), "NotFoundError", http.StatusNotFound},
		{domain.NewServiceError("m"), "ServiceError", http.StatusInternalServerError},
		{domain.NewInternalServerError(errors.New("causa")), "InternalServerError", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.wantName, func(t *testing.T) {
			assert.Equal(t, tc.wantName, tc.err.Name)
			assert.Equal(t, tc.wantStatus, tc.err.StatusCode)
			assert.NotEmpty(t, tc.err.Message)
			assert.NotEmpty(t, tc.err.Action)
		})
	}
}

func TestInternalServerError_PreservaCausaSemVazar(t *testing.T) {
	cause := errors.New("duplicate key error collection: caramelo.users")
	err := domain.NewInternalServerError(cause)

	// Mensagem ao cliente é genérica; a causa fica acessível via Unwrap.
	assert.NotContains(t, err.Message, "duplicate key")
	assert.ErrorIs(t, err, cause)
}

func TestAsError_AtravesDeWrap(t *testing.T) {
	original := domain.NewForbiddenError("acesso negado", "a")
	wrapped := fmt.Errorf("contexto extra: %w", original)

	got, ok := domain.AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, original, got)
}

func TestAsError_ErroComum(t *testing.T) {
	_, ok := domain.AsError(errors.New("qualquer"))
	assert.False(t, ok)
}
