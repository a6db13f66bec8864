package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
	"github.com/jhoicas/parser-config-api/internal/domain"
)

// PromptHandler maneja los prompts de extracción de un parser.
type PromptHandler struct {
	uc *usecase.PromptUseCase
}

// NewPromptHandler construye el handler.
func NewPromptHandler(uc *usecase.PromptUseCase) *PromptHandler {
	return &PromptHandler{uc: uc}
}

// InsertBatch godoc
// @Summary      Insertar lote de prompts (todo o nada)
// @Tags         prompts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsertPromptsRequest  true  "Prompts"
// @Success      200   {object}  dto.Envelope{data=dto.InsertPromptsResult}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /insert-prompts [post]
// @Router       /api/prompts/batch [post]
func (h *PromptHandler) InsertBatch(c *fiber.Ctx) error {
	var in dto.InsertPromptsRequest
	if err := c.BodyParser(&in); err != nil {
		// prompts no es un arreglo: mismo mensaje que un lote vacío.
		return respondError(c, domain.Invalid(usecase.MsgInvalidPromptBatch))
	}
	out, err := h.uc.InsertBatch(c.UserContext(), GetOrgID(c), in.Prompts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Envelope{
		Status:  fiber.StatusOK,
		Message: "Data inserted successfully.",
		Data:    out,
	})
}

// ListByParser godoc
// @Summary      Listar prompts de un parser
// @Tags         prompts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del parser"
// @Success      200  {array}   dto.PromptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parsers/{id}/prompts [get]
func (h *PromptHandler) ListByParser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ListByParser(c.UserContext(), GetOrgID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar prompt
// @Tags         prompts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del prompt"
// @Param        body  body  dto.UpdatePromptRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PromptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prompts/{id} [put]
func (h *PromptHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdatePromptRequest
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
// @Summary      Eliminar prompt
// @Tags         prompts
// @Security     Bearer
// @Param        id   path  int  true  "ID del prompt"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prompts/{id} [delete]
func (h *PromptHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetOrgID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
