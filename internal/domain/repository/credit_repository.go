package repository

import (
	"context"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// CreditRepository define a porta de persistência para Credit.
type CreditRepository interface {
	// CreateMany insere unidades de crédito individuais em lote.
	CreateMany(ctx context.Context, credits []*entity.Credit) error
	// ListPendingByCompany junta créditos pendentes com cartão e consumidor,
	// em ordem de criação.
	ListPendingByCompany(ctx context.Context, companyID string) ([]*entity.PendingCredit, error)
	// ListByUserGroupedByCard agrupa os créditos não excluídos de um consumidor
	// por cartão, uma entrada por cartão.
	ListByUserGroupedByCard(ctx context.Context, userID string) ([]*entity.CardCredits, error)
	// HasActiveLink informa se existe crédito não excluído ligando a empresa ao
	// consumidor — é o único mecanismo de posse client→consumer.
	HasActiveLink(ctx context.Context, companyID, userID string) (bool, error)
}
