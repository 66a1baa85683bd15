package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/catalog"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
)

// CategoryHandler expone las categorías remotas de Nuvemshop: listado y lectura
// normalizados, y escritura de descripciones con la plataforma como fuente de
// verdad (sin registro local).
type CategoryHandler struct {
	sync *catalog.SyncUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(sync *catalog.SyncUseCase) *CategoryHandler {
	return &CategoryHandler{sync: sync}
}

// List godoc
// @Summary      Listar categorías de Nuvemshop con descripción normalizada
// @Tags         categories
// @Produce      json
// @Param        store_id  query  string  false  "Tienda; si falta se usa la del token o la primera configurada"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/descriptions/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.sync.ListWithDescriptions(c.Context(), resolveStoreParam(c))
	if err != nil {
		return failFromError(c, err, "Error al buscar categorías")
	}
	return c.JSON(dto.OK(out, "Categorías obtenidas con éxito"))
}

// Get godoc
// @Summary      Obtener una categoría de Nuvemshop con descripción normalizada
// @Tags         categories
// @Produce      json
// @Param        categoryId  path   string  true   "ID de la categoría"
// @Param        store_id    query  string  false  "Tienda"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/categories/{categoryId}/description [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.sync.GetDescription(c.Context(), resolveStoreParam(c), c.Params("categoryId"))
	if err != nil {
		return failFromError(c, err, "Error al buscar la categoría")
	}
	return c.JSON(dto.OK(out, "Categoría obtenida con éxito"))
}

// SetDescription godoc
// @Summary      Publicar la descripción de una categoría en Nuvemshop
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Param        body  body  dto.SetDescriptionRequest  true  "Descripción (solo html_content viaja a la plataforma)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /api/categories/{categoryId}/description [put]
func (h *CategoryHandler) SetDescription(c *fiber.Ctx) error {
	var in dto.SetDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.HTMLContent == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(
			dto.FailFields("Validación fallida", map[string]string{"html_content": "html_content es requerido"}))
	}
	out, err := h.sync.SetDescription(c.Context(), resolveStoreParam(c), c.Params("categoryId"), in.Content, in.HTMLContent)
	if err != nil {
		return failFromError(c, err, "Error al actualizar en Nuvemshop")
	}
	return c.JSON(dto.OK(out, "Descripción sincronizada con éxito en Nuvemshop"))
}

// ClearDescription godoc
// @Summary      Borrar la descripción de una categoría en Nuvemshop
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/categories/{categoryId}/description [delete]
func (h *CategoryHandler) ClearDescription(c *fiber.Ctx) error {
	if err := h.sync.ClearDescription(c.Context(), resolveStoreParam(c), c.Params("categoryId")); err != nil {
		return failFromError(c, err, "Error al borrar en Nuvemshop")
	}
	return c.JSON(dto.OK(nil, "Descripción borrada con éxito en Nuvemshop"))
}
