package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
)

// BrowserPromptHandler CRUD de browser_automation_prompt.
type BrowserPromptHandler struct {
	uc *usecase.BrowserPromptUseCase
}

// NewBrowserPromptHandler construye el handler.
func NewBrowserPromptHandler(uc *usecase.BrowserPromptUseCase) *BrowserPromptHandler {
	return &BrowserPromptHandler{uc: uc}
}

// Create godoc
// @Summary      Crear prompt de navegador
// @Tags         browser-prompts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrowserPromptRequest  true  "Prompt"
// @Success      201   {object}  dto.BrowserPromptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/browser-prompts [post]
func (h *BrowserPromptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrowserPromptRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar prompts de navegador
// @Tags         browser-prompts
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Filtrar por estado"
// @Param        limit   query  int   false  "Límite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Success      200     {object}  dto.BrowserPromptListResponse
// @Router       /api/browser-prompts [get]
func (h *BrowserPromptHandler) List(c *fiber.Ctx) error {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "VALIDATION", "active must be true or false.")
		}
		active = &v
	}
	out, err := h.uc.List(c.UserContext(), active, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener prompt de navegador
// @Tags         browser-prompts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.BrowserPromptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/browser-prompts/{id} [get]
func (h *BrowserPromptHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar prompt de navegador
// @Tags         browser-prompts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                              true  "ID"
// @Param        body  body  dto.UpdateBrowserPromptRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BrowserPromptResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/browser-prompts/{id} [put]
func (h *BrowserPromptHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateBrowserPromptRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar prompt de navegador
// @Tags         browser-prompts
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Router       /api/browser-prompts/{id} [delete]
func (h *BrowserPromptHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
