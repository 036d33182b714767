package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/logger"
)

// ErrorHandler resolve todo erro no envelope uniforme
// {name, message, action, status_code}. Nenhum tipo de erro é engolido: causa
// de erro interno vai para o log, nunca para o cliente.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if de, ok := domain.AsError(err); ok {
			if de.StatusCode >= fiber.StatusInternalServerError {
				log.Error().Err(errors.Unwrap(de)).Str("name", de.Name).Str("path", c.Path()).Msg("erro interno")
			}
			return c.Status(de.StatusCode).JSON(de)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return c.Status(fiber.StatusNotFound).JSON(domain.NewNotFoundError("resource not found", "Check the requested path and try again."))
			}
			log.Error().Err(fe).Str("path", c.Path()).Msg("erro do framework")
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("erro não mapeado")
		}

		internal := domain.NewInternalServerError(err)
		return c.Status(internal.StatusCode).JSON(internal)
	}
}
