package repository

import (
	"context"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// CompanyRepository define a porta de persistência para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// List devolve empresas não excluídas com paginação.
	List(ctx context.Context, limit, offset int64) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	SoftDelete(ctx context.Context, id string) error
}
