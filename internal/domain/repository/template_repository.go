package repository

import (
	"context"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// TemplateRepository define el puerto de persistencia para llm_template_list.
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	GetByID(ctx context.Context, id int64) (*entity.Template, error)
	// FindByParserID devuelve nil, nil si el parser aún no tiene template.
	FindByParserID(ctx context.Context, parserID int64) (*entity.Template, error)
	// ListByOrg lista, por ID, los templates cuyos parsers son de orgID.
	ListByOrg(ctx context.Context, orgID string, limit, offset int) ([]*entity.Template, error)
	Update(ctx context.Context, template *entity.Template) error
	Delete(ctx context.Context, id int64) error
	DeleteByParser(ctx context.Context, parserID int64) (int64, error)
}
