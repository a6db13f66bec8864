package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

var _ repository.BrowserPromptRepository = (*BrowserPromptRepo)(nil)

const browserPromptColumns = `id, name, prompt, description, is_active, date_created, date_updated`

// BrowserPromptRepo implementación de BrowserPromptRepository sobre browser_automation_prompt.
type BrowserPromptRepo struct {
	q Querier
}

// NewBrowserPromptRepository construye el adaptador.
func NewBrowserPromptRepository(q Querier) *BrowserPromptRepo {
	return &BrowserPromptRepo{q: q}
}

// Create persiste un prompt de navegador; nombre repetido → ErrDuplicate.
func (r *BrowserPromptRepo) Create(ctx context.Context, p *entity.BrowserPrompt) error {
	query := `
		INSERT INTO browser_automation_prompt (name, prompt, description, is_active, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Prompt, p.Description, p.IsActive, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert browser prompt: %w", err)
	}
	return nil
}

// GetByID obtiene un prompt de navegador; nil, nil si no existe.
func (r *BrowserPromptRepo) GetByID(ctx context.Context, id int64) (*entity.BrowserPrompt, error) {
	query := `SELECT ` + browserPromptColumns + ` FROM browser_automation_prompt WHERE id = $1`
	var p entity.BrowserPrompt
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Prompt, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get browser prompt: %w", err)
	}
	return &p, nil
}

// List lista prompts de navegador por nombre.
func (r *BrowserPromptRepo) List(ctx context.Context, activeOnly *bool, limit, offset int) ([]*entity.BrowserPrompt, error) {
	query := `SELECT ` + browserPromptColumns + ` FROM browser_automation_prompt
		WHERE ($1::boolean IS NULL OR is_active = $1)
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list browser prompts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BrowserPrompt
	for rows.Next() {
		var p entity.BrowserPrompt
		if err := rows.Scan(&p.ID, &p.Name, &p.Prompt, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan browser prompt: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables.
func (r *BrowserPromptRepo) Update(ctx context.Context, p *entity.BrowserPrompt) error {
	query := `
		UPDATE browser_automation_prompt
		SET name = $2, prompt = $3, description = $4, is_active = $5, date_updated = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Prompt, p.Description, p.IsActive, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update browser prompt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un prompt de navegador.
func (r *BrowserPromptRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM browser_automation_prompt WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete browser prompt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
