package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

func requireCardForbidden(t *testing.T, err error) {
	t.Helper()
	de, ok := domain.AsError(err)
	require.True(t, ok, "esperado erro de domínio, veio: %v", err)
	assert.Equal(t, "ForbiddenError", de.Name)
	assert.Equal(t, "card not found for this company", de.Message)
}

func TestCardCreate_HerdaEmpresaDoSolicitante(t *testing.T) {
	cards := newFakeCardRepo()
	uc := usecase.NewCardUseCase(cards)

	out, err := uc.Create(context.Background(), clientPrincipal("company-1"), dto.CreateCardRequest{Title: "Café 10"})
	require.NoError(t, err)

	assert.Equal(t, "company-1", out.CompanyID)
	assert.Equal(t, entity.StatusAvailable, out.Status)
	assert.NotEmpty(t, out.ID)
}

func TestCardCreate_TituloObrigatorio(t *testing.T) {
	uc := usecase.NewCardUseCase(newFakeCardRepo())

	_, err := uc.Create(context.Background(), clientPrincipal("company-1"), dto.CreateCardRequest{})
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "ValidationError", de.Name)
}

// A listagem nunca cruza empresas nem devolve excluídos.
func TestCardList_EscopoPorEmpresa(t *testing.T) {
	cards := newFakeCardRepo()
	uc := usecase.NewCardUseCase(cards)

	require.NoError(t, cards.Create(context.Background(), &entity.Card{Title: "A", CompanyID: "company-1", Status: entity.StatusAvailable}))
	require.NoError(t, cards.Create(context.Background(), &entity.Card{Title: "B", CompanyID: "company-2", Status: entity.StatusAvailable}))
	require.NoError(t, cards.Create(context.Background(), &entity.Card{Title: "C", CompanyID: "company-1", Status: entity.StatusUnavailable, Excluded: true}))

	out, err := uc.List(context.Background(), clientPrincipal("company-1"))
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].Title)
}

func TestCardDelete_DaPropriaEmpresa(t *testing.T) {
	cards := newFakeCardRepo()
	uc := usecase.NewCardUseCase(cards)
	card := &entity.Card{Title: "A", CompanyID: "company-1", Status: entity.StatusAvailable}
	require.NoError(t, cards.Create(context.Background(), card))

	require.NoError(t, uc.Delete(context.Background(), clientPrincipal("company-1"), card.ID))

	stored, err := cards.GetByID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.True(t, stored.Excluded)
	assert.Equal(t, entity.StatusUnavailable, stored.Status)
}

// Cartão de outra empresa, inexistente ou já excluído: mesma resposta.
func TestCardDelete_OutraEmpresaEhForbidden(t *testing.T) {
	cards := newFakeCardRepo()
	uc := usecase.NewCardUseCase(cards)
	card := &entity.Card{Title: "A", CompanyID: "company-2", Status: entity.StatusAvailable}
	require.NoError(t, cards.Create(context.Background(), card))

	err := uc.Delete(context.Background(), clientPrincipal("company-1"), card.ID)
	requireCardForbidden(t, err)

	stored, getErr := cards.GetByID(context.Background(), card.ID)
	require.NoError(t, getErr)
	assert.False(t, stored.Excluded)
}

func TestCardDelete_InexistenteEhForbidden(t *testing.T) {
	uc := usecase.NewCardUseCase(newFakeCardRepo())
	err := uc.Delete(context.Background(), clientPrincipal("company-1"), "nao-existe")
	requireCardForbidden(t, err)
}

func TestCardDelete_JaExcluidoEhForbidden(t *testing.T) {
	cards := newFakeCardRepo()
	uc := usecase.NewCardUseCase(cards)
	card := &entity.Card{Title: "A", CompanyID: "company-1", Status: entity.StatusUnavailable, Excluded: true}
	require.NoError(t, cards.Create(context.Background(), card))

	err := uc.Delete(context.Background(), clientPrincipal("company-1"), card.ID)
	requireCardForbidden(t, err)
}
