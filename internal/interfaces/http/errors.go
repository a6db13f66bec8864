package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain"
)

// Mensajes que los clientes existentes comparan literalmente.
const (
	msgInvalidTable    = "Invalid table name"
	msgTemplateExists  = "Parser ID already exists. Duplicate entries are not allowed."
	msgInvalidBody     = "Invalid request body."
	msgInvalidID       = "Invalid id."
	msgInternal        = "Internal server error."
	msgParserNotFound  = "Parser not found."
	msgNotFound        = "Resource not found."
	msgTableNotFound   = "Table not found."
	msgDuplicate       = "Duplicate entries are not allowed."
	msgLLMUnavailable  = "LLM provider is not configured."
	msgExtractTimeout  = "Extraction timed out."
	msgNoPromptsDefine = "The parser has no prompts defined."
)

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Status: status, Code: code, Message: msg})
}

// respondError traduce un error de la capa de aplicación al cuerpo y código HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Status: fiber.StatusBadRequest, Code: "VALIDATION", Error: ve.Message, Message: ve.Message,
		})
	case errors.Is(err, domain.ErrTableNotAllowed):
		return fail(c, fiber.StatusBadRequest, "INVALID_TABLE", msgInvalidTable)
	case errors.Is(err, domain.ErrNoPromptsDefined):
		return fail(c, fiber.StatusBadRequest, "NO_PROMPTS", msgNoPromptsDefine)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrTemplateExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Status: fiber.StatusConflict, Error: "Conflict", Message: msgTemplateExists,
		})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "DUPLICATE", msgDuplicate)
	case errors.Is(err, domain.ErrParserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", msgParserNotFound)
	case errors.Is(err, domain.ErrTableNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", msgTableNotFound)
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", msgNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrLLMUnavailable):
		return fail(c, fiber.StatusServiceUnavailable, "LLM_UNAVAILABLE", msgLLMUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return fail(c, fiber.StatusRequestTimeout, "TIMEOUT", msgExtractTimeout)
	}
	log.Error().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("error interno")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", msgInternal)
}

// ErrorHandler renderiza los errores de Fiber (404 de ruta, body demasiado grande, pánicos
// recuperados) con el mismo sobre que el resto de la API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fail(c, fe.Code, "HTTP_"+strconv.Itoa(fe.Code), fe.Message)
	}
	return respondError(c, err)
}

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
}

func badBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
}
