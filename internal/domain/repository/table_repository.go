package repository

import (
	"context"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// TableRepository puerto del explorador genérico de tablas.
// Los nombres de tabla y columna llegan ya validados contra la allow-list y la introspección.
type TableRepository interface {
	Columns(ctx context.Context, table string) ([]entity.TableColumn, error)
	Browse(ctx context.Context, q entity.BrowseQuery, columns []entity.TableColumn) (*entity.TablePage, error)
}
