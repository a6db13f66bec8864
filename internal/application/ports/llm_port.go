package ports

import "context"

// LLMService define el puerto de salida hacia el proveedor de IA (Anthropic, Gemini, mock).
// El aplicativo solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Complete envía un mensaje de sistema y uno de usuario y devuelve el texto de la respuesta.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, system, user string) (string, error)
	// Provider nombre corto del proveedor, usado en métricas y respuestas.
	Provider() string
}
