package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/extraction"
)

const extractionSystemPrompt = `You extract exactly one field from a business document.
Reply with the value only: no labels, no quotes, no explanations.
If the document does not contain the value reply with null.`

// ExtractionUseCase playground: corre los prompts de un parser contra un texto con el LLM configurado.
// Las llamadas van en paralelo con un tope de concurrencia y un deadline global.
type ExtractionUseCase struct {
	parsers        ParserReader
	llm            ports.LLMService
	metrics        ports.LLMMetrics
	timeout        time.Duration
	maxConcurrency int
}

// NewExtractionUseCase construye el caso de uso. llm puede ser nil (proveedor sin API key):
// en ese caso Extract responde ErrLLMUnavailable.
func NewExtractionUseCase(parsers ParserReader, llm ports.LLMService, metrics ports.LLMMetrics, timeout time.Duration, maxConcurrency int) *ExtractionUseCase {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ExtractionUseCase{
		parsers:        parsers,
		llm:            llm,
		metrics:        metrics,
		timeout:        timeout,
		maxConcurrency: maxConcurrency,
	}
}

type fieldResult struct {
	value any
	err   error
}

// Extract ejecuta cada prompt del parser y tipa las respuestas según column_type.
// Un error en un campo no aborta la corrida: queda en Errors.
func (uc *ExtractionUseCase) Extract(ctx context.Context, orgID string, parserID int64, in dto.ExtractRequest) (*dto.ExtractResponse, error) {
	if uc.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.Invalid("text is required.")
	}
	def, err := uc.parsers.Get(ctx, orgID, parserID)
	if err != nil {
		return nil, err
	}
	if len(def.Prompts) == 0 {
		return nil, domain.ErrNoPromptsDefined
	}

	system := extractionSystemPrompt
	if def.Template != nil && def.Template.TemplatePrompt != nil && *def.Template.TemplatePrompt != "" {
		system += "\n\n" + *def.Template.TemplatePrompt
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	results := make([]fieldResult, len(def.Prompts))
	var g errgroup.Group
	g.SetLimit(uc.maxConcurrency)
	for i, p := range def.Prompts {
		g.Go(func() error {
			results[i] = uc.runPrompt(ctx, system, p, in.Text)
			return nil
		})
	}
	_ = g.Wait()

	// El plazo cuenta solo si cortó algún campo; vencer después de la última respuesta no.
	for _, r := range results {
		if errors.Is(r.err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("extracción parser %d: %w", parserID, context.DeadlineExceeded)
		}
	}

	out := &dto.ExtractResponse{
		RunID:    uuid.NewString(),
		ParserID: parserID,
		Provider: uc.llm.Provider(),
		Fields:   make(map[string]any, len(def.Prompts)),
		Errors:   map[string]string{},
	}
	for i, p := range def.Prompts {
		if results[i].err != nil {
			out.Errors[p.DBColumn] = results[i].err.Error()
			continue
		}
		out.Fields[p.DBColumn] = results[i].value
	}
	return out, nil
}

func (uc *ExtractionUseCase) runPrompt(ctx context.Context, system string, p dto.PromptResponse, text string) fieldResult {
	kind, err := extraction.ParseKind(p.ColumnType)
	if err != nil {
		return fieldResult{err: err}
	}
	if err := ctx.Err(); err != nil {
		return fieldResult{err: err}
	}
	user := p.Prompt + "\n\nDocument:\n" + text

	start := time.Now()
	answer, err := uc.llm.Complete(ctx, system, user)
	uc.observe(outcome(err), time.Since(start))
	if err != nil {
		return fieldResult{err: err}
	}
	v, err := extraction.Coerce(kind, answer)
	return fieldResult{value: v, err: err}
}

func (uc *ExtractionUseCase) observe(result string, elapsed time.Duration) {
	if uc.metrics != nil {
		uc.metrics.ObserveLLMCall(uc.llm.Provider(), result, elapsed)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
