package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/phone"
)

// UserUseCase gestão de usuários client (admin).
type UserUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewUserUseCase constrói o caso de uso de usuários.
func NewUserUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, companyRepo: companyRepo}
}

// CreateClient cria um usuário com role client vinculado a uma empresa ativa.
// Telefone já cadastrado falha com a mesma mensagem genérica da emissão.
func (uc *UserUseCase) CreateClient(ctx context.Context, in dto.CreateClientRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, domain.NewValidationError("invalid phone", "Submit a valid phone number.")
	}

	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.Active() {
		return nil, domain.NewNotFoundError("resource not found", "Check the submitted company and try again.")
	}

	existing, err := uc.userRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("already exists", "Check the submitted phone and try again.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}

	now := time.Now()
	user := &entity.User{
		Name:      in.Name,
		Phone:     normalized,
		Password:  string(hash),
		Role:      entity.RoleClient,
		CompanyID: company.ID,
		Status:    entity.StatusAvailable,
		Excluded:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
