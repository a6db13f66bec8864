package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
	"github.com/jhoicas/parser-config-api/internal/infrastructure/metrics"
)

// TableHandler explorador de tablas de la allow-list.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// BrowseLegacy godoc
// @Summary      Buscar, ordenar y paginar una tabla permitida
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TableBrowseRequest  true  "Tabla y filtros"
// @Success      200   {object}  dto.Envelope{data=dto.TableBrowseResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /get-all-tables-information [post]
func (h *TableHandler) BrowseLegacy(c *fiber.Ctx) error {
	var in dto.TableBrowseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.browse(c, in)
}

// Browse godoc
// @Summary      Buscar, ordenar y paginar una tabla permitida
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        table      path   string  true   "Tabla"
// @Param        search     query  string  false  "Texto a buscar en todas las columnas"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Filas por página"  default(10)
// @Param        sortBy     query  string  false  "Columna de orden"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200        {object}  dto.Envelope{data=dto.TableBrowseResponse}
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/tables/{table} [get]
func (h *TableHandler) Browse(c *fiber.Ctx) error {
	var in dto.TableBrowseRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	in.TableName = c.Params("table")
	return h.browse(c, in)
}

func (h *TableHandler) browse(c *fiber.Ctx, in dto.TableBrowseRequest) error {
	out, err := h.uc.Browse(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.TableBrowseRows.WithLabelValues(out.Table).Observe(float64(len(out.Rows)))
	return c.JSON(dto.Envelope{
		Status:  fiber.StatusOK,
		Message: "Data fetched successfully.",
		Data:    out,
	})
}

// List godoc
// @Summary      Tablas de la allow-list y si existen
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TableSummary
// @Router       /api/tables [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Summaries(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
