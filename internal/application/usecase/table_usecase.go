package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

// Límites de paginación del explorador de tablas.
const (
	DefaultTableLimit = 10
	MaxTableLimit     = 100
)

// TableUseCase explorador genérico restringido a una allow-list de tablas.
type TableUseCase struct {
	repo    repository.TableRepository
	allowed []string
	set     map[string]struct{}
}

// NewTableUseCase construye el caso de uso con la allow-list (se ignoran nombres vacíos).
func NewTableUseCase(repo repository.TableRepository, allowed []string) *TableUseCase {
	uc := &TableUseCase{repo: repo, set: make(map[string]struct{}, len(allowed))}
	for _, t := range allowed {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := uc.set[t]; dup {
			continue
		}
		uc.set[t] = struct{}{}
		uc.allowed = append(uc.allowed, t)
	}
	return uc
}

// Allowed devuelve la allow-list en el orden configurado.
func (uc *TableUseCase) Allowed() []string {
	return append([]string(nil), uc.allowed...)
}

// Summaries introspecta cada tabla permitida; las que no existen se marcan con Exists=false.
func (uc *TableUseCase) Summaries(ctx context.Context) ([]dto.TableSummary, error) {
	out := make([]dto.TableSummary, 0, len(uc.allowed))
	for _, t := range uc.allowed {
		cols, err := uc.repo.Columns(ctx, t)
		switch {
		case errors.Is(err, domain.ErrTableNotFound):
			out = append(out, dto.TableSummary{Name: t})
		case err != nil:
			return nil, err
		default:
			out = append(out, dto.TableSummary{Name: t, Columns: len(cols), Exists: true})
		}
	}
	return out, nil
}

// Browse valida la petición contra la allow-list y las columnas reales y devuelve una página.
func (uc *TableUseCase) Browse(ctx context.Context, in dto.TableBrowseRequest) (*dto.TableBrowseResponse, error) {
	table := strings.TrimSpace(in.TableName)
	if _, ok := uc.set[table]; !ok {
		return nil, domain.ErrTableNotAllowed
	}

	page := in.Page
	switch {
	case page == 0:
		page = 1
	case page < 0:
		return nil, domain.Invalid("Invalid page. Must be 1 or greater.")
	}
	limit := in.Limit
	switch {
	case limit == 0:
		limit = DefaultTableLimit
	case limit < 0:
		return nil, domain.Invalid("Invalid limit. Must be between 1 and 100.")
	case limit > MaxTableLimit:
		limit = MaxTableLimit
	}
	if page-1 > math.MaxInt/limit {
		return nil, domain.Invalid("Invalid page. Out of range.")
	}
	order := strings.ToLower(strings.TrimSpace(in.SortOrder))
	switch order {
	case "":
		order = entity.SortDesc
	case entity.SortAsc, entity.SortDesc:
	default:
		return nil, domain.Invalid("Invalid sortOrder. Use asc or desc.")
	}

	cols, err := uc.repo.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	sortBy, err := resolveSortColumn(strings.TrimSpace(in.SortBy), cols)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.Browse(ctx, entity.BrowseQuery{
		Table:     table,
		Search:    strings.TrimSpace(in.Search),
		SortBy:    sortBy,
		SortOrder: order,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}, cols)
	if err != nil {
		return nil, err
	}

	out := &dto.TableBrowseResponse{
		Table:   table,
		Columns: make([]dto.TableColumnResponse, 0, len(cols)),
		Rows:    res.Rows,
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      res.Total,
			TotalPages: (res.Total + int64(limit) - 1) / int64(limit),
		},
	}
	if out.Rows == nil {
		out.Rows = []map[string]any{}
	}
	for _, c := range cols {
		out.Columns = append(out.Columns, dto.TableColumnResponse{Name: c.Name, Type: c.DataType})
	}
	return out, nil
}

// resolveSortColumn exige que sortBy sea una columna real; vacío usa id o, si no hay, la primera.
func resolveSortColumn(sortBy string, cols []entity.TableColumn) (string, error) {
	if sortBy == "" {
		for _, c := range cols {
			if c.Name == "id" {
				return "id", nil
			}
		}
		return cols[0].Name, nil
	}
	for _, c := range cols {
		if c.Name == sortBy {
			return sortBy, nil
		}
	}
	return "", domain.Invalid("Invalid sortBy column.")
}
