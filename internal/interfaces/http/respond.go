package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/nuvemshop"
)

// failFromError mapea errores de la capa de aplicación al envelope uniforme.
// Un rechazo de la plataforma viaja como 400 con el cuerpo remoto en el
// mensaje: se prioriza la diagnosticabilidad sobre ocultar el detalle.
func failFromError(c *fiber.Ctx, err error, contextMsg string) error {
	var remoteErr *nuvemshop.RemoteError
	switch {
	case errors.Is(err, domain.ErrNoStoreConfigured):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Ninguna tienda configurada. Ejecute la instalación primero."))
	case errors.As(err, &remoteErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(contextMsg + ": " + remoteErr.Body))
	case errors.Is(err, nuvemshop.ErrTokenMissing) || errors.Is(err, nuvemshop.ErrStoreIDMissing):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(contextMsg + ": " + err.Error()))
	}
}
