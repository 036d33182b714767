package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// CreditLine uma linha do pedido de emissão: cartão + quantidade de unidades.
type CreditLine struct {
	CardID   string `json:"card_id"`
	Quantity int    `json:"quantity"`
}

// Validate ambos os campos são obrigatórios em toda linha.
func (l CreditLine) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.CardID, validation.Required),
		validation.Field(&l.Quantity, validation.Required, validation.Min(1)),
	)
}

// CreateConsumerRequest entrada (client) para criar consumidor com créditos.
type CreateConsumerRequest struct {
	Name    string       `json:"name"`
	Phone   string       `json:"phone"`
	Credits []CreditLine `json:"credits"`
}

// Validate checa nome, telefone e cada linha de crédito.
func (r CreateConsumerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Credits, validation.Required),
	)
}

// ConsumerCreatedResponse saída da emissão: consumidor + total de unidades criadas.
type ConsumerCreatedResponse struct {
	Consumer     UserResponse `json:"consumer"`
	CreditsCount int          `json:"credits_count"`
}

// ConsumerProfileResponse perfil de um consumidor com créditos agrupados por cartão.
type ConsumerProfileResponse struct {
	Consumer UserResponse          `json:"consumer"`
	Cards    []*entity.CardCredits `json:"cards"`
}
