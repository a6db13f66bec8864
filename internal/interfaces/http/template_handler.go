package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
)

// TemplateHandler maneja llm_template_list.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Onboard godoc
// @Summary      Dar de alta el template de un parser
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardTemplateRequest  true  "Template"
// @Success      201   {object}  dto.OnboardTemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /onboard-template [post]
// @Router       /api/templates [post]
func (h *TemplateHandler) Onboard(c *fiber.Ctx) error {
	var in dto.OnboardTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Onboard(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OnboardTemplateResponse{
		Status:     fiber.StatusCreated,
		Message:    "Template onboarded successfully!",
		TemplateID: out.ID,
	})
}

// List godoc
// @Summary      Listar templates
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TemplateListResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetOrgID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener template
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del template"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [get]
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Get(c.UserContext(), GetOrgID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar template
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID del template"
// @Param        body  body  dto.UpdateTemplateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TemplateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetOrgID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar template
// @Tags         templates
// @Security     Bearer
// @Param        id   path  int  true  "ID del template"
// @Success      204
// @Router       /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetOrgID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Match godoc
// @Summary      Buscar el template que corresponde a un texto
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MatchTemplateRequest  true  "Texto del documento"
// @Success      200   {object}  dto.TemplateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/templates/match [post]
func (h *TemplateHandler) Match(c *fiber.Ctx) error {
	var in dto.MatchTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Match(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
