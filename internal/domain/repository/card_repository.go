package repository

import (
	"context"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// CardRepository define a porta de persistência para Card.
type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) error
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	// ListByCompany devolve os cartões não excluídos de uma empresa.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Card, error)
	SoftDelete(ctx context.Context, id string) error
}
