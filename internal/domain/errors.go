package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrParserNotFound   = errors.New("parser no encontrado")
	ErrTemplateExists   = errors.New("el parser ya tiene un template")
	ErrTableNotAllowed  = errors.New("tabla no permitida")
	ErrTableNotFound    = errors.New("tabla no existe")
	ErrLLMUnavailable   = errors.New("servicio LLM no configurado")
	ErrNoPromptsDefined = errors.New("el parser no tiene prompts")
)

// ValidationError error de validación con un mensaje apto para el cliente.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError con msg.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}
