package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/installation"
)

// InstallHandler maneja la instalación de la app desde Nuvemshop.
type InstallHandler struct {
	uc *installation.InstallUseCase
}

// NewInstallHandler construye el handler.
func NewInstallHandler(uc *installation.InstallUseCase) *InstallHandler {
	return &InstallHandler{uc: uc}
}

// Install godoc
// @Summary      Instalar la app (intercambio de código OAuth por token)
// @Tags         install
// @Produce      json
// @Param        code  query  string  true  "Código de autorización de Nuvemshop"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      422  {object}  dto.Envelope
// @Router       /api/ns/install [get]
func (h *InstallHandler) Install(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(
			dto.FailFields("Validación fallida", map[string]string{"code": "code es requerido"}))
	}
	out, err := h.uc.Authorize(c.Context(), code)
	if err != nil {
		return failFromError(c, err, "Fallo en la autorización")
	}
	return c.JSON(dto.OK(out, "Autorización realizada con éxito"))
}
