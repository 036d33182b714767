package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// CompanyResponse perfil público de uma empresa.
type CompanyResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Address   entity.Address `json:"address"`
	Logo      string         `json:"logo,omitempty"`
	SegmentID string         `json:"segment_id,omitempty"`
	Document  string         `json:"document"`
}

// ToCompanyResponse projeta a entidade no perfil público.
func ToCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Logo:      c.Logo,
		SegmentID: c.SegmentID,
		Document:  c.Document,
	}
}

// AddressRequest endereço estruturado de entrada; coordenadas vêm do geocoder.
type AddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipcode"`
}

// Validate checa os campos obrigatórios do endereço.
func (r AddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Street, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.State, validation.Required),
		validation.Field(&r.ZipCode, validation.Required),
	)
}

// ToAddress converte para a entidade, sem coordenadas.
func (r AddressRequest) ToAddress() entity.Address {
	return entity.Address{
		Street:       r.Street,
		Number:       r.Number,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
	}
}

// CreateCompanyRequest entrada (admin) para criar uma empresa.
type CreateCompanyRequest struct {
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Address   AddressRequest `json:"address"`
	Logo      string         `json:"logo"`
	SegmentID string         `json:"segment_id"`
	Document  string         `json:"document"`
}

// Validate checa os campos obrigatórios.
func (r CreateCompanyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Document, validation.Required),
		validation.Field(&r.Address),
	)
}

// UpdateCompanyRequest entrada (admin) para atualizar uma empresa.
type UpdateCompanyRequest struct {
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Address   *AddressRequest `json:"address"`
	Logo      string          `json:"logo"`
	SegmentID string          `json:"segment_id"`
}
