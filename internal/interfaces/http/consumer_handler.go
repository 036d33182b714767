package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/i18n"
)

// ConsumerHandler emissão de créditos e gestão de consumidores (role client).
type ConsumerHandler struct {
	uc *usecase.CreditUseCase
}

// NewConsumerHandler constrói o handler de consumidores.
func NewConsumerHandler(uc *usecase.CreditUseCase) *ConsumerHandler {
	return &ConsumerHandler{uc: uc}
}

// Create POST /api/consumers — cria o consumidor e as unidades de crédito.
func (h *ConsumerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsumerRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	out, err := h.uc.CreateConsumerWithCredits(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PendingCredits GET /api/credits/pending — créditos pendentes da empresa,
// juntados com cartão e consumidor.
func (h *ConsumerHandler) PendingCredits(c *fiber.Ctx) error {
	out, err := h.uc.PendingCredits(c.Context(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Profile GET /api/consumers/:id — perfil com créditos agrupados por cartão.
func (h *ConsumerHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.ConsumerProfile(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete DELETE /api/consumers/:id — exclusão lógica, condicionada ao vínculo
// de posse por crédito.
func (h *ConsumerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteConsumer(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return err
	}
	loc := i18n.New(c.Get("Accept-Language"))
	return c.JSON(dto.MessageResponse{Message: loc.Localize("consumer.removed", nil)})
}
