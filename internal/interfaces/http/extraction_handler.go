package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
)

// ExtractionHandler playground: corre los prompts de un parser contra un texto.
type ExtractionHandler struct {
	uc *usecase.ExtractionUseCase
}

// NewExtractionHandler construye el handler.
func NewExtractionHandler(uc *usecase.ExtractionUseCase) *ExtractionHandler {
	return &ExtractionHandler{uc: uc}
}

// Extract godoc
// @Summary      Probar los prompts de un parser con el LLM configurado
// @Tags         playground
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del parser"
// @Param        body  body  dto.ExtractRequest  true  "Texto del documento"
// @Success      200   {object}  dto.ExtractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/parsers/{id}/extract [post]
func (h *ExtractionHandler) Extract(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.ExtractRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Extract(c.UserContext(), GetOrgID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
