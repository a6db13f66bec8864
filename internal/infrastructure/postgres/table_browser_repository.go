package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

var _ repository.TableRepository = (*TableBrowserRepo)(nil)

// TableBrowserRepo explorador genérico: introspecta columnas y arma consultas
// parametrizadas de búsqueda, orden y paginación sobre tablas de la allow-list.
type TableBrowserRepo struct {
	q Querier
}

// NewTableBrowserRepository construye el adaptador.
func NewTableBrowserRepository(q Querier) *TableBrowserRepo {
	return &TableBrowserRepo{q: q}
}

// Columns devuelve las columnas de table en el esquema actual, en orden ordinal.
// Una tabla sin columnas visibles se reporta como ErrTableNotFound.
func (r *TableBrowserRepo) Columns(ctx context.Context, table string) ([]entity.TableColumn, error) {
	query := `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`
	rows, err := r.q.Query(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("introspect %s: %w", table, err)
	}
	defer rows.Close()
	var cols []entity.TableColumn
	for rows.Next() {
		var c entity.TableColumn
		if err := rows.Scan(&c.Name, &c.DataType); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("introspect %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, domain.ErrTableNotFound
	}
	return cols, nil
}

// Browse ejecuta el conteo y la página de datos descritos por q.
func (r *TableBrowserRepo) Browse(ctx context.Context, q entity.BrowseQuery, columns []entity.TableColumn) (*entity.TablePage, error) {
	bq := buildBrowseQuery(q, columns)

	var total int64
	if err := r.q.QueryRow(ctx, bq.countSQL, bq.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count %s: %w", q.Table, err)
	}

	rows, err := r.q.Query(ctx, bq.dataSQL, bq.dataArgs()...)
	if err != nil {
		return nil, fmt.Errorf("browse %s: %w", q.Table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]map[string]any, 0, q.Limit)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, f := range fields {
			row[f.Name] = jsonValue(vals[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("browse %s: %w", q.Table, err)
	}
	return &entity.TablePage{Rows: out, Total: total}, nil
}

type browseQuery struct {
	countSQL string
	dataSQL  string
	args     []any // argumentos del WHERE, compartidos por ambas consultas
	limit    int
	offset   int
}

func (b browseQuery) dataArgs() []any {
	args := make([]any, 0, len(b.args)+2)
	args = append(args, b.args...)
	return append(args, b.limit, b.offset)
}

// buildBrowseQuery arma el SQL. Ningún valor de usuario se concatena: los identificadores
// salen de la introspección y se citan con pgx.Identifier; el término de búsqueda va como $1.
func buildBrowseQuery(q entity.BrowseQuery, columns []entity.TableColumn) browseQuery {
	table := pgx.Identifier{q.Table}.Sanitize()

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pgx.Identifier{c.Name}.Sanitize()
	}

	var where string
	var args []any
	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		conds := make([]string, len(quoted))
		for i, col := range quoted {
			conds[i] = col + "::text ILIKE $1"
		}
		where = " WHERE (" + strings.Join(conds, " OR ") + ")"
	}

	order := "DESC"
	if q.SortOrder == entity.SortAsc {
		order = "ASC"
	}
	orderBy := pgx.Identifier{q.SortBy}.Sanitize() + " " + order
	// Desempate estable entre páginas cuando la columna de orden repite valores.
	if tie := tieBreaker(columns); tie != "" && tie != q.SortBy {
		orderBy += ", " + pgx.Identifier{tie}.Sanitize() + " " + order
	}
	n := len(args)

	return browseQuery{
		countSQL: "SELECT COUNT(*) FROM " + table + where,
		dataSQL: fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
			strings.Join(quoted, ", "), table, where, orderBy, n+1, n+2),
		args:   args,
		limit:  q.Limit,
		offset: q.Offset,
	}
}

// tieBreaker devuelve "id" si la tabla la tiene; si no, la primera columna.
func tieBreaker(columns []entity.TableColumn) string {
	for _, c := range columns {
		if c.Name == "id" {
			return "id"
		}
	}
	if len(columns) > 0 {
		return columns[0].Name
	}
	return ""
}

// jsonValue adapta valores de pgx que no serializan bien a JSON.
func jsonValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case [16]byte:
		return uuid.UUID(t).String()
	default:
		return v
	}
}
