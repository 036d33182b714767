package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// CreateCardRequest entrada (client) para criar um cartão fidelidade.
type CreateCardRequest struct {
	Title string `json:"title"`
}

// Validate checa os campos obrigatórios.
func (r CreateCardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 120)),
	)
}

// CardResponse projeção de um cartão.
type CardResponse struct {
	ID        string                `json:"id"`
	CompanyID string                `json:"company_id"`
	Title     string                `json:"title"`
	Status    entity.ResourceStatus `json:"status"`
}

// ToCardResponse projeta a entidade.
func ToCardResponse(c *entity.Card) CardResponse {
	return CardResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Title:     c.Title,
		Status:    c.Status,
	}
}
