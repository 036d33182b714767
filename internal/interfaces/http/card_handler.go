package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/i18n"
)

// CardHandler gestão de cartões fidelidade (role client).
type CardHandler struct {
	uc *usecase.CardUseCase
}

// NewCardHandler constrói o handler de cartões.
func NewCardHandler(uc *usecase.CardUseCase) *CardHandler {
	return &CardHandler{uc: uc}
}

// Create POST /api/cards — cria um cartão sob a empresa do solicitante.
func (h *CardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCardRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/cards — cartões não excluídos da empresa do solicitante.
func (h *CardHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete DELETE /api/cards/:id — exclusão lógica, restrita à própria empresa.
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return err
	}
	loc := i18n.New(c.Get("Accept-Language"))
	return c.JSON(dto.MessageResponse{Message: loc.Localize("card.removed", nil)})
}
