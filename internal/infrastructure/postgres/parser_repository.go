package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

var _ repository.ParserRepository = (*ParserRepo)(nil)

const parserColumns = `id, org_id, name, config, parser_type, sample_file, dynamic_parser,
		azure_document_output, status, date_created, date_updated`

// ParserRepo implementación de ParserRepository sobre parser_config (usable con pool o tx).
type ParserRepo struct {
	q Querier
}

// NewParserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewParserRepository(q Querier) *ParserRepo {
	return &ParserRepo{q: q}
}

// Create persiste un parser nuevo. Las columnas dynamic_* quedan en NULL (parser no dinámico).
func (r *ParserRepo) Create(ctx context.Context, p *entity.Parser) error {
	cfg, err := json.Marshal(p.Config)
	if err != nil {
		return fmt.Errorf("marshal parser config: %w", err)
	}
	query := `
		INSERT INTO parser_config
			(org_id, name, config, parser_type, sample_file, dynamic_parser,
			 azure_document_output, status, date_created, date_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		p.OrgID, p.Name, cfg, p.ParserType, p.SampleFile, p.DynamicParser,
		p.AzureDocumentOutput, p.Status, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert parser: %w", err)
	}
	return nil
}

// GetByID obtiene un parser por ID; nil, nil si no existe.
func (r *ParserRepo) GetByID(ctx context.Context, id int64) (*entity.Parser, error) {
	query := `SELECT ` + parserColumns + ` FROM parser_config WHERE id = $1`
	p, err := scanParser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parser: %w", err)
	}
	return p, nil
}

// ListByOrg lista parsers de la organización, más recientes primero. status vacío = todos.
func (r *ParserRepo) ListByOrg(ctx context.Context, orgID, status string, limit, offset int) ([]*entity.Parser, error) {
	query := `SELECT ` + parserColumns + ` FROM parser_config
		WHERE org_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY date_created DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, orgID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parsers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Parser
	for rows.Next() {
		p, err := scanParser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parser: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByOrg cuenta los parsers que devolvería ListByOrg sin paginar.
func (r *ParserRepo) CountByOrg(ctx context.Context, orgID, status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM parser_config WHERE org_id = $1 AND ($2 = '' OR status = $2)`,
		orgID, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count parsers: %w", err)
	}
	return n, nil
}

// Update actualiza nombre, config y estado.
func (r *ParserRepo) Update(ctx context.Context, p *entity.Parser) error {
	cfg, err := json.Marshal(p.Config)
	if err != nil {
		return fmt.Errorf("marshal parser config: %w", err)
	}
	query := `
		UPDATE parser_config SET name = $2, config = $3, status = $4, date_updated = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Name, cfg, p.Status, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update parser: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrParserNotFound
	}
	return nil
}

// Delete elimina un parser por ID.
func (r *ParserRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM parser_config WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parser: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrParserNotFound
	}
	return nil
}

func scanParser(s scanner) (*entity.Parser, error) {
	var p entity.Parser
	var raw []byte
	if err := s.Scan(
		&p.ID, &p.OrgID, &p.Name, &raw, &p.ParserType, &p.SampleFile, &p.DynamicParser,
		&p.AzureDocumentOutput, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p.Config); err != nil {
			return nil, fmt.Errorf("config de parser %d ilegible: %w", p.ID, err)
		}
	}
	return &p, nil
}
