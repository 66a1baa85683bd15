package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/usecase"
)

// PublicHandler endpoints públicos de solo lectura para que el frontend o los
// widgets de la tienda consuman las descripciones sin autenticación.
type PublicHandler struct {
	uc *usecase.DescriptionUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(uc *usecase.DescriptionUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// GetByCategory godoc
// @Summary      Descripción pública de una categoría
// @Tags         public
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /public/descriptions/{categoryId} [get]
func (h *PublicHandler) GetByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetByCategory(c.Params("categoryId"))
	if err != nil {
		return failFromError(c, err, "Error al obtener la descripción")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("No hay descripción para esta categoría"))
	}
	return c.JSON(dto.OK(out, "Descripción obtenida con éxito"))
}

// ListAll godoc
// @Summary      Todas las descripciones indexadas por categoría
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /public/descriptions [get]
func (h *PublicHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAllByCategory()
	if err != nil {
		return failFromError(c, err, "Error al obtener las descripciones")
	}
	total := len(out)
	resp := dto.OK(out, "Descripciones obtenidas con éxito")
	resp.Total = &total
	return c.JSON(resp)
}
