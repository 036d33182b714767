package usecase

import (
	"context"
	"time"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/phone"
)

// TxRunner porta para executar um callback com atomicidade de transação.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreditUseCase emissão de créditos e leituras agregadas.
type CreditUseCase struct {
	tx             TxRunner
	userRepo       repository.UserRepository
	creditRepo     repository.CreditRepository
	expirationDays int
}

// NewCreditUseCase constrói o caso de uso de créditos.
func NewCreditUseCase(tx TxRunner, userRepo repository.UserRepository, creditRepo repository.CreditRepository, expirationDays int) *CreditUseCase {
	return &CreditUseCase{
		tx:             tx,
		userRepo:       userRepo,
		creditRepo:     creditRepo,
		expirationDays: expirationDays,
	}
}

// CreateConsumerWithCredits cria o consumidor e, para cada linha, quantity
// unidades de crédito individuais, tudo dentro de uma transação: ou o
// consumidor e todos os créditos existem, ou nada existe.
func (uc *CreditUseCase) CreateConsumerWithCredits(ctx context.Context, principal dto.Principal, in dto.CreateConsumerRequest) (*dto.ConsumerCreatedResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	for _, line := range in.Credits {
		if err := line.Validate(); err != nil {
			return nil, domain.NewValidationError(err.Error(), "Check the submitted credit lines and try again.")
		}
	}
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, domain.NewValidationError("invalid phone", "Submit a valid phone number.")
	}

	existing, err := uc.userRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("already exists", "Check the submitted phone and try again.")
	}

	// Consumidor criado por um client não recebe senha; o primeiro acesso passa
	// pelo fluxo de recuperação por SMS, que define uma.
	now := time.Now()
	consumer := &entity.User{
		Name:      in.Name,
		Phone:     normalized,
		Role:      entity.RoleConsumer,
		Status:    entity.StatusAvailable,
		Excluded:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	total := 0
	for _, line := range in.Credits {
		total += line.Quantity
	}

	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, consumer); err != nil {
			return err
		}
		expiresAt := now.AddDate(0, 0, uc.expirationDays)
		credits := make([]*entity.Credit, 0, total)
		for _, line := range in.Credits {
			for i := 0; i < line.Quantity; i++ {
				credits = append(credits, &entity.Credit{
					CardID:    line.CardID,
					UserID:    consumer.ID,
					CompanyID: principal.CompanyID,
					Status:    entity.CreditAvailable,
					Excluded:  false,
					ExpiresAt: expiresAt,
					CreatedAt: now,
					UpdatedAt: now,
				})
			}
		}
		return uc.creditRepo.CreateMany(ctx, credits)
	})
	if err != nil {
		if de, ok := domain.AsError(err); ok {
			return nil, de
		}
		return nil, domain.NewInternalServerError(err)
	}

	return &dto.ConsumerCreatedResponse{
		Consumer:     dto.ToUserResponse(consumer),
		CreditsCount: total,
	}, nil
}

// PendingCredits lista os créditos pendentes da empresa do solicitante,
// juntados com cartão e consumidor, em ordem de criação.
func (uc *CreditUseCase) PendingCredits(ctx context.Context, principal dto.Principal) ([]*entity.PendingCredit, error) {
	return uc.creditRepo.ListPendingByCompany(ctx, principal.CompanyID)
}

// ConsumerProfile devolve o perfil de um consumidor com créditos agrupados por
// cartão. A leitura exige o vínculo de posse: crédito não excluído ligando a
// empresa do solicitante ao consumidor.
func (uc *CreditUseCase) ConsumerProfile(ctx context.Context, principal dto.Principal, consumerID string) (*dto.ConsumerProfileResponse, error) {
	if err := uc.requireLink(ctx, principal, consumerID); err != nil {
		return nil, err
	}
	consumer, err := uc.userRepo.GetByID(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	if consumer == nil || consumer.Excluded {
		return nil, forbiddenNotFound()
	}
	cards, err := uc.creditRepo.ListByUserGroupedByCard(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	return &dto.ConsumerProfileResponse{
		Consumer: dto.ToUserResponse(consumer),
		Cards:    cards,
	}, nil
}

// DeleteConsumer exclui (soft) um consumidor. Permitido apenas quando existe o
// vínculo de posse; consumidor inexistente, já excluído ou sem vínculo recebe
// a mesma resposta, para não distinguir "sem relação" de "não existe".
func (uc *CreditUseCase) DeleteConsumer(ctx context.Context, principal dto.Principal, consumerID string) error {
	if err := uc.requireLink(ctx, principal, consumerID); err != nil {
		return err
	}
	consumer, err := uc.userRepo.GetByID(ctx, consumerID)
	if err != nil {
		return err
	}
	if consumer == nil || consumer.Excluded {
		return forbiddenNotFound()
	}
	return uc.userRepo.SoftDelete(ctx, consumerID)
}

func (uc *CreditUseCase) requireLink(ctx context.Context, principal dto.Principal, consumerID string) error {
	linked, err := uc.creditRepo.HasActiveLink(ctx, principal.CompanyID, consumerID)
	if err != nil {
		return err
	}
	if !linked {
		return forbiddenNotFound()
	}
	return nil
}

// forbiddenNotFound é deliberadamente Forbidden com sabor de não-encontrado.
func forbiddenNotFound() *domain.Error {
	return domain.NewForbiddenError("consumer not found for this company", "Check the submitted consumer and try again.")
}
