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

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

const templateColumns = `id, template_name, template_matching_text, template_prompt, parser_id, date_created, date_updated`

// TemplateRepo implementación de TemplateRepository sobre llm_template_list (usable con pool o tx).
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

// Create persiste un template. Un segundo template para el mismo parser viola
// llm_template_list_parser_id_key y se traduce a ErrTemplateExists.
func (r *TemplateRepo) Create(ctx context.Context, t *entity.Template) error {
	query := `
		INSERT INTO llm_template_list
			(template_name, template_matching_text, template_prompt, parser_id, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.Name, t.MatchingText, t.Prompt, t.ParserID, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrTemplateExists
		case isForeignKeyViolation(err):
			return domain.ErrParserNotFound
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene un template; nil, nil si no existe.
func (r *TemplateRepo) GetByID(ctx context.Context, id int64) (*entity.Template, error) {
	return r.getOne(ctx, `SELECT `+templateColumns+` FROM llm_template_list WHERE id = $1`, id)
}

// FindByParserID obtiene el template de un parser; nil, nil si no tiene.
func (r *TemplateRepo) FindByParserID(ctx context.Context, parserID int64) (*entity.Template, error) {
	return r.getOne(ctx, `SELECT `+templateColumns+` FROM llm_template_list WHERE parser_id = $1 LIMIT 1`, parserID)
}

func (r *TemplateRepo) getOne(ctx context.Context, query string, arg int64) (*entity.Template, error) {
	var t entity.Template
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&t.ID, &t.Name, &t.MatchingText, &t.Prompt, &t.ParserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// ListByOrg lista templates por ID con paginación; la organización sale del parser dueño.
func (r *TemplateRepo) ListByOrg(ctx context.Context, orgID string, limit, offset int) ([]*entity.Template, error) {
	query := `
		SELECT t.id, t.template_name, t.template_matching_text, t.template_prompt, t.parser_id, t.date_created, t.date_updated
		FROM llm_template_list t
		JOIN parser_config p ON p.id = t.parser_id
		WHERE p.org_id = $1
		ORDER BY t.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Template
	for rows.Next() {
		var t entity.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.MatchingText, &t.Prompt, &t.ParserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza nombre, texto característico y prompt del template.
func (r *TemplateRepo) Update(ctx context.Context, t *entity.Template) error {
	query := `
		UPDATE llm_template_list
		SET template_name = $2, template_matching_text = $3, template_prompt = $4, date_updated = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, t.ID, t.Name, t.MatchingText, t.Prompt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un template por ID.
func (r *TemplateRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM llm_template_list WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByParser elimina el template de un parser (0 o 1 filas).
func (r *TemplateRepo) DeleteByParser(ctx context.Context, parserID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM llm_template_list WHERE parser_id = $1`, parserID)
	if err != nil {
		return 0, fmt.Errorf("delete template by parser: %w", err)
	}
	return cmd.RowsAffected(), nil
}
