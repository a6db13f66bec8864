package repository

import (
	"context"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// ParserRepository define el puerto de persistencia para parser_config (DIP).
type ParserRepository interface {
	// Create inserta el parser y asigna parser.ID.
	Create(ctx context.Context, parser *entity.Parser) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Parser, error)
	ListByOrg(ctx context.Context, orgID, status string, limit, offset int) ([]*entity.Parser, error)
	CountByOrg(ctx context.Context, orgID, status string) (int64, error)
	Update(ctx context.Context, parser *entity.Parser) error
	Delete(ctx context.Context, id int64) error
}
