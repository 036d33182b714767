package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/i18n"
)

// CompanyHandler gestão de empresas e de usuários client (role admin).
type CompanyHandler struct {
	companyUC *usecase.CompanyUseCase
	userUC    *usecase.UserUseCase
}

// NewCompanyHandler constrói o handler de empresas.
func NewCompanyHandler(companyUC *usecase.CompanyUseCase, userUC *usecase.UserUseCase) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC, userUC: userUC}
}

// Create POST /api/companies — cria uma empresa (endereço geocodificado).
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	out, err := h.companyUC.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/companies — empresas não excluídas, paginadas.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return domain.NewValidationError("invalid query parameters", "Check limit/offset and try again.")
	}
	out, err := h.companyUC.List(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID GET /api/companies/:id.
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.companyUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update PUT /api/companies/:id.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	out, err := h.companyUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete DELETE /api/companies/:id — exclusão lógica permanente.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.companyUC.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	loc := i18n.New(c.Get("Accept-Language"))
	return c.JSON(dto.MessageResponse{Message: loc.Localize("company.removed", nil)})
}

// CreateClient POST /api/users — cria um usuário client de uma empresa.
func (h *CompanyHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	out, err := h.userUC.CreateClient(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
