package usecase

import (
	"context"
	"time"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
)

// CardUseCase gestão de cartões fidelidade de uma empresa.
type CardUseCase struct {
	cardRepo repository.CardRepository
}

// NewCardUseCase constrói o caso de uso de cartões.
func NewCardUseCase(cardRepo repository.CardRepository) *CardUseCase {
	return &CardUseCase{cardRepo: cardRepo}
}

// Create cria um cartão sob a empresa do solicitante.
func (uc *CardUseCase) Create(ctx context.Context, principal dto.Principal, in dto.CreateCardRequest) (*dto.CardResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	now := time.Now()
	card := &entity.Card{
		CompanyID: principal.CompanyID,
		Title:     in.Title,
		Status:    entity.StatusAvailable,
		Excluded:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	resp := dto.ToCardResponse(card)
	return &resp, nil
}

// List devolve os cartões não excluídos da empresa do solicitante.
func (uc *CardUseCase) List(ctx context.Context, principal dto.Principal) ([]dto.CardResponse, error) {
	cards, err := uc.cardRepo.ListByCompany(ctx, principal.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, dto.ToCardResponse(c))
	}
	return out, nil
}

// Delete exclui (soft) um cartão da própria empresa. Cartão de outra empresa,
// inexistente ou já excluído recebe a mesma resposta Forbidden.
func (uc *CardUseCase) Delete(ctx context.Context, principal dto.Principal, cardID string) error {
	card, err := uc.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil || card.Excluded || card.CompanyID != principal.CompanyID {
		return domain.NewForbiddenError("card not found for this company", "Check the submitted card and try again.")
	}
	return uc.cardRepo.SoftDelete(ctx, cardID)
}
