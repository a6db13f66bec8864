package repository

import (
	"context"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// BrowserPromptRepository define el puerto de persistencia para browser_automation_prompt.
type BrowserPromptRepository interface {
	Create(ctx context.Context, prompt *entity.BrowserPrompt) error
	GetByID(ctx context.Context, id int64) (*entity.BrowserPrompt, error)
	// List filtra por is_active cuando activeOnly no es nil.
	List(ctx context.Context, activeOnly *bool, limit, offset int) ([]*entity.BrowserPrompt, error)
	Update(ctx context.Context, prompt *entity.BrowserPrompt) error
	Delete(ctx context.Context, id int64) error
}
