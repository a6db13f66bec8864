package dto

// TableBrowseRequest parámetros del explorador (body en la ruta legacy, query en /api/tables/:table).
type TableBrowseRequest struct {
	TableName string `json:"tableName" query:"-"`
	Search    string `json:"search" query:"search"`
	Page      int    `json:"page" query:"page"`
	Limit     int    `json:"limit" query:"limit"`
	SortBy    string `json:"sortBy" query:"sortBy"`
	SortOrder string `json:"sortOrder" query:"sortOrder"`
}

// TableColumnResponse columna introspectada.
type TableColumnResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PaginationResponse paginación por número de página.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// TableBrowseResponse página de filas de una tabla.
type TableBrowseResponse struct {
	Table      string                `json:"table"`
	Columns    []TableColumnResponse `json:"columns"`
	Rows       []map[string]any      `json:"rows"`
	Pagination PaginationResponse    `json:"pagination"`
}

// TableSummary tabla de la allow-list y su número de columnas (0 si no existe).
type TableSummary struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Exists  bool   `json:"exists"`
}
