package repository

import (
	"context"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// UserRepository define a porta de persistência para User (DIP).
// Métodos de leitura devolvem (nil, nil) quando não há correspondência.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByPhone busca por telefone entre usuários não excluídos.
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	// Update persiste os campos mutáveis, incluindo o par de recuperação de senha.
	Update(ctx context.Context, user *entity.User) error
	// SoftDelete marca excluded = true e status = unavailable; nunca remove fisicamente.
	SoftDelete(ctx context.Context, id string) error
}
