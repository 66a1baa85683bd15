package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/usecase"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain"
)

// DescriptionHandler maneja el CRUD de descripciones locales. Cada mutación
// dispara además la publicación best-effort hacia Nuvemshop (ver use case).
type DescriptionHandler struct {
	uc *usecase.DescriptionUseCase
}

// NewDescriptionHandler construye el handler.
func NewDescriptionHandler(uc *usecase.DescriptionUseCase) *DescriptionHandler {
	return &DescriptionHandler{uc: uc}
}

// Index godoc
// @Summary      Listar descripciones locales
// @Tags         descriptions
// @Produce      json
// @Param        per_page  query  int  false  "Tamaño de página"  default(15)
// @Param        page      query  int  false  "Página"            default(1)
// @Success      200  {object}  dto.Envelope
// @Router       /api/descriptions [get]
func (h *DescriptionHandler) Index(c *fiber.Ctx) error {
	perPage := c.QueryInt("per_page", 15)
	page := c.QueryInt("page", 1)
	out, err := h.uc.List(perPage, page)
	if err != nil {
		return failFromError(c, err, "Error al listar descripciones")
	}
	resp := dto.OK(out.Items, "Descripciones obtenidas con éxito")
	resp.Pagination = &out.Pagination
	return c.JSON(resp)
}

// Show godoc
// @Summary      Obtener descripción por ID
// @Tags         descriptions
// @Produce      json
// @Param        id  path  string  true  "ID de la descripción"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/descriptions/{id} [get]
func (h *DescriptionHandler) Show(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromError(c, err, "Error al obtener la descripción")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Descripción no encontrada"))
	}
	return c.JSON(dto.OK(out, "Descripción obtenida con éxito"))
}

// GetByCategory godoc
// @Summary      Obtener descripción por categoría Nuvemshop
// @Tags         descriptions
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/descriptions/category/{categoryId} [get]
func (h *DescriptionHandler) GetByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetByCategory(c.Params("categoryId"))
	if err != nil {
		return failFromError(c, err, "Error al obtener la descripción")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("No hay descripción para esta categoría"))
	}
	return c.JSON(dto.OK(out, "Descripción obtenida con éxito"))
}

// Store godoc
// @Summary      Crear descripción y sincronizarla con Nuvemshop
// @Tags         descriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDescriptionRequest  true  "Datos de la descripción"
// @Success      201  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /api/descriptions [post]
func (h *DescriptionHandler) Store(c *fiber.Ctx) error {
	var in dto.CreateDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if fields := validateDescription(in.CategoryID, in.Content, in.HTMLContent, true); len(fields) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.FailFields("Validación fallida", fields))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(
				dto.FailFields("Validación fallida", map[string]string{"category_id": "ya existe una descripción para esta categoría"}))
		}
		return failFromError(c, err, "Error al crear la descripción")
	}
	// El push a Nuvemshop es best-effort: el 201 refleja la escritura local.
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "Descripción creada y sincronizada con Nuvemshop"))
}

// Update godoc
// @Summary      Actualizar descripción y sincronizarla con Nuvemshop
// @Tags         descriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la descripción"
// @Param        body  body  dto.UpdateDescriptionRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /api/descriptions/{id} [put]
func (h *DescriptionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if fields := validateDescription("", in.Content, in.HTMLContent, false); len(fields) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.FailFields("Validación fallida", fields))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return failFromError(c, err, "Error al actualizar la descripción")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Descripción no encontrada"))
	}
	return c.JSON(dto.OK(out, "Descripción actualizada y sincronizada con Nuvemshop"))
}

// Destroy godoc
// @Summary      Eliminar descripción local
// @Tags         descriptions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la descripción"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/descriptions/{id} [delete]
func (h *DescriptionHandler) Destroy(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Descripción no encontrada"))
		}
		return failFromError(c, err, "Error al eliminar la descripción")
	}
	return c.JSON(dto.OK(nil, "Descripción eliminada con éxito"))
}

// validateDescription valida los campos requeridos de una mutación.
// requireCategory distingue alta (category_id obligatorio) de modificación.
func validateDescription(categoryID, content, htmlContent string, requireCategory bool) map[string]string {
	fields := map[string]string{}
	if requireCategory && categoryID == "" {
		fields["category_id"] = "category_id es requerido"
	}
	if content == "" {
		fields["content"] = "content es requerido"
	}
	if htmlContent == "" {
		fields["html_content"] = "html_content es requerido"
	}
	return fields
}
