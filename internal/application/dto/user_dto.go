package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// UserResponse perfil público de um usuário (nunca carrega hash, status
// interno ou flags de exclusão).
type UserResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Role  entity.UserRole `json:"role"`
}

// ToUserResponse projeta a entidade no perfil público.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

// CreateClientRequest entrada (admin) para criar um usuário client de uma empresa.
type CreateClientRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	CompanyID string `json:"company_id"`
}

// Validate checa os campos obrigatórios.
func (r CreateClientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&r.CompanyID, validation.Required),
	)
}
