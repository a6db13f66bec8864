package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
)

// ParserHandler maneja las peticiones HTTP de parser_config.
type ParserHandler struct {
	uc *usecase.ParserUseCase
}

// NewParserHandler construye el handler.
func NewParserHandler(uc *usecase.ParserUseCase) *ParserHandler {
	return &ParserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear parser
// @Tags         parsers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateParserRequest  true  "Datos del parser"
// @Success      201   {object}  dto.CreateParserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /create-parser [post]
// @Router       /api/parsers [post]
func (h *ParserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateParserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateParserResponse{
		Status:   fiber.StatusCreated,
		Message:  "Parser created successfully!",
		ParserID: out.ID,
	})
}

// List godoc
// @Summary      Listar parsers de la organización
// @Tags         parsers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        status  query  string  false  "Active | Inactive"
// @Success      200     {object}  dto.ParserListResponse
// @Router       /api/parsers [get]
func (h *ParserHandler) List(c *fiber.Ctx) error {
	in := dto.ParserListRequest{PageRequest: pageFromQuery(c), Status: c.Query("status")}
	out, err := h.uc.List(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener parser con sus prompts y template
// @Tags         parsers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del parser"
// @Success      200  {object}  dto.ParserDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parsers/{id} [get]
func (h *ParserHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar parser
// @Tags         parsers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del parser"
// @Param        body  body  dto.UpdateParserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ParserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parsers/{id} [put]
func (h *ParserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateParserRequest
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
// @Summary      Eliminar parser, sus prompts y su template
// @Tags         parsers
// @Security     Bearer
// @Param        id   path  int  true  "ID del parser"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parsers/{id} [delete]
func (h *ParserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetOrgID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
