package dto

import "time"

// CreateParserRequest entrada de POST /create-parser.
type CreateParserRequest struct {
	ParserName            string `json:"parserName"`
	DatabaseTableName     string `json:"databaseTableName"`
	DBTableFileNameColumn string `json:"dbTableFileNameColumn"`
}

// CreateParserResponse salida de la creación: conserva parserId en la raíz.
type CreateParserResponse struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	ParserID int64  `json:"parserId"`
}

// UpdateParserRequest actualización parcial de un parser.
type UpdateParserRequest struct {
	Name                  *string `json:"name"`
	Status                *string `json:"status"`
	DatabaseTableName     *string `json:"databaseTableName"`
	DBTableFileNameColumn *string `json:"dbTableFileNameColumn"`
}

// ParserConfigResponse blob de configuración sin la contraseña.
type ParserConfigResponse struct {
	SQL                    string `json:"sql"`
	SQLURL                 string `json:"sqlUrl"`
	UserName               string `json:"userName"`
	Database               string `json:"database"`
	Table                  string `json:"table"`
	LLMPromptDatabaseTable string `json:"llmPromptDatabaseTable"`
	ShowQuery              bool   `json:"show_query"`
	FileNameColumn         string `json:"fileNameColumn"`
}

// ParserResponse salida de un parser.
type ParserResponse struct {
	ID         int64                `json:"id"`
	OrgID      string               `json:"org_id"`
	Name       string               `json:"name"`
	ParserType string               `json:"parser_type"`
	Status     string               `json:"status"`
	Config     ParserConfigResponse `json:"config"`
	CreatedAt  time.Time            `json:"date_created"`
	UpdatedAt  time.Time            `json:"date_updated"`
}

// ParserDetailResponse parser con sus prompts y su template (si tiene).
type ParserDetailResponse struct {
	ParserResponse
	Prompts  []PromptResponse  `json:"prompts"`
	Template *TemplateResponse `json:"template"`
}

// ParserListResponse lista paginada de parsers.
type ParserListResponse struct {
	Items []ParserResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ParserListRequest filtros del listado de parsers.
type ParserListRequest struct {
	PageRequest
	Status string `query:"status"`
}
