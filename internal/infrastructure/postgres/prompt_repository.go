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

var _ repository.PromptRepository = (*PromptRepo)(nil)

// PromptRepo implementación de PromptRepository sobre llm_parser_prompt (usable con pool o tx).
type PromptRepo struct {
	q Querier
}

// NewPromptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromptRepository(q Querier) *PromptRepo {
	return &PromptRepo{q: q}
}

// Create persiste un prompt y asigna su ID.
func (r *PromptRepo) Create(ctx context.Context, p *entity.Prompt) error {
	query := `
		INSERT INTO llm_parser_prompt (prompt, db_column, column_type, parser_id, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Prompt, p.DBColumn, p.ColumnType, p.ParserID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrParserNotFound
		}
		return fmt.Errorf("insert prompt: %w", err)
	}
	return nil
}

// GetByID obtiene un prompt; nil, nil si no existe.
func (r *PromptRepo) GetByID(ctx context.Context, id int64) (*entity.Prompt, error) {
	query := `
		SELECT id, prompt, db_column, column_type, parser_id, date_created, date_updated
		FROM llm_parser_prompt WHERE id = $1`
	var p entity.Prompt
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Prompt, &p.DBColumn, &p.ColumnType, &p.ParserID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return &p, nil
}

// ListByParser lista los prompts de un parser en orden de alta.
func (r *PromptRepo) ListByParser(ctx context.Context, parserID int64) ([]*entity.Prompt, error) {
	query := `
		SELECT id, prompt, db_column, column_type, parser_id, date_created, date_updated
		FROM llm_parser_prompt WHERE parser_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, parserID)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prompt
	for rows.Next() {
		var p entity.Prompt
		if err := rows.Scan(&p.ID, &p.Prompt, &p.DBColumn, &p.ColumnType, &p.ParserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza texto, columna y tipo de un prompt.
func (r *PromptRepo) Update(ctx context.Context, p *entity.Prompt) error {
	query := `
		UPDATE llm_parser_prompt SET prompt = $2, db_column = $3, column_type = $4, date_updated = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Prompt, p.DBColumn, p.ColumnType, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un prompt por ID.
func (r *PromptRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM llm_parser_prompt WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByParser elimina todos los prompts de un parser y devuelve cuántos borró.
func (r *PromptRepo) DeleteByParser(ctx context.Context, parserID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM llm_parser_prompt WHERE parser_id = $1`, parserID)
	if err != nil {
		return 0, fmt.Errorf("delete prompts by parser: %w", err)
	}
	return cmd.RowsAffected(), nil
}
