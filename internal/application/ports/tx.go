package ports

import (
	"context"

	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace rollback y no se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parserRepo repository.ParserRepository,
		promptRepo repository.PromptRepository,
		templateRepo repository.TemplateRepository,
	) error) error
}
