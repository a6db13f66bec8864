package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/usecase"
)

// ExportHandler descargas de la definición de un parser.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// XML godoc
// @Summary      Exportar parser como XML
// @Description  El ETag es el SHA-256 de la forma canónica (C14N) del documento.
// @Tags         exports
// @Security     Bearer
// @Produce      xml
// @Param        id   path  int  true  "ID del parser"
// @Success      200  {string}  string
// @Success      304
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parsers/{id}/export.xml [get]
func (h *ExportHandler) XML(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	data, digest, err := h.uc.XML(c.UserContext(), GetOrgID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	etag := `"` + digest + `"`
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderETag, etag)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}

// PDF godoc
// @Summary      Ficha técnica del parser en PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del parser"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parsers/{id}/report.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	data, filename, err := h.uc.PDF(c.UserContext(), GetOrgID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Bundle godoc
// @Summary      ZIP con el XML, su digest y la ficha PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/zip
// @Param        id   path  int  true  "ID del parser"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parsers/{id}/bundle.zip [get]
func (h *ExportHandler) Bundle(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	data, filename, err := h.uc.Bundle(c.UserContext(), GetOrgID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
