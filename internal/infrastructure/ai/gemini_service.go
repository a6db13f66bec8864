package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/jhoicas/parser-config-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiDefaultModel = "gemini-1.5-flash"

// GeminiService adaptador que implementa LLMService con el SDK google.golang.org/genai.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. Sin model usa gemini-1.5-flash.
func NewGeminiService(apiKey, model string) (*GeminiService, error) {
	return newGeminiService(apiKey, model, "")
}

// newGeminiService permite apuntar el cliente a otro host (tests).
func newGeminiService(apiKey, model, baseURL string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	if model == "" {
		model = geminiDefaultModel
	}

	timeout := 60 * time.Second // timeout de red; el caller también pone WithTimeout
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
			Timeout: &timeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// Provider implementa ports.LLMService.
func (s *GeminiService) Provider() string { return ProviderGemini }

// Complete llama a generateContent con la instrucción de sistema y el texto del usuario.
func (s *GeminiService) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0), // extracción: respuestas deterministas
		MaxOutputTokens:   512,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("AI: Gemini error %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("AI: llamada a Gemini fallida: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return stripCodeFence(text), nil
}
