package repository

import (
	"context"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// PromptRepository define el puerto de persistencia para llm_parser_prompt.
type PromptRepository interface {
	Create(ctx context.Context, prompt *entity.Prompt) error
	GetByID(ctx context.Context, id int64) (*entity.Prompt, error)
	ListByParser(ctx context.Context, parserID int64) ([]*entity.Prompt, error)
	Update(ctx context.Context, prompt *entity.Prompt) error
	Delete(ctx context.Context, id int64) error
	DeleteByParser(ctx context.Context, parserID int64) (int64, error)
}
