package entity

// TableColumn columna introspectada de information_schema.
type TableColumn struct {
	Name     string
	DataType string
}

// Sentidos de orden admitidos por el explorador de tablas.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// BrowseQuery parámetros ya validados de una consulta del explorador de tablas.
type BrowseQuery struct {
	Table     string
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// TablePage resultado de una consulta del explorador.
type TablePage struct {
	Rows  []map[string]any
	Total int64
}
