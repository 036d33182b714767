package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/auth"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/i18n"
)

// AuthHandler login e recuperação de senha.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login — telefone + senha → credencial de sessão.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ForgotPassword POST /api/auth/forgot-password — emite e entrega o token de
// recuperação por SMS. O token nunca aparece na resposta.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	if err := h.uc.ForgotPassword(c.Context(), in); err != nil {
		return err
	}
	loc := i18n.New(c.Get("Accept-Language"))
	return c.JSON(dto.MessageResponse{Message: loc.Localize("auth.recover_token_sent", nil)})
}

// ValidateToken POST /api/auth/validate-token — checa o token e o invalida
// (uso único).
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var in dto.ValidateTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	if err := h.uc.ValidateToken(c.Context(), in); err != nil {
		return err
	}
	loc := i18n.New(c.Get("Accept-Language"))
	return c.JSON(dto.MessageResponse{Message: loc.Localize("auth.token_validated", nil)})
}

// ResetPassword POST /api/auth/reset-password — troca a senha com o token.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("invalid request body", "Submit a valid JSON body.")
	}
	if err := h.uc.ResetPassword(c.Context(), in); err != nil {
		return err
	}
	loc := i18n.New(c.Get("Accept-Language"))
	return c.JSON(dto.MessageResponse{Message: loc.Localize("auth.password_updated", nil)})
}
