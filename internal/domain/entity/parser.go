package entity

import "time"

// Estados posibles de un parser.
const (
	ParserStatusActive   = "Active"
	ParserStatusInactive = "Inactive"
)

// ParserTypeLLM tipo de parser que registra esta API.
const ParserTypeLLM = "llm-parser"

// Parser representa una fila de parser_config: un mapeo documento → tabla destino.
type Parser struct {
	ID                  int64
	OrgID               string
	Name                string
	Config              ParserConfig
	ParserType          string
	SampleFile          string
	DynamicParser       bool
	AzureDocumentOutput string
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ParserConfig es el blob JSON que lee el servicio de parsing para saber dónde escribir.
// Los nombres JSON son los que ya consume ese servicio; no cambiarlos.
type ParserConfig struct {
	SQL                    string `json:"sql"`
	SQLURL                 string `json:"sqlUrl"`
	UserName               string `json:"userName"`
	Password               string `json:"password"`
	Database               string `json:"database"`
	Table                  string `json:"table"`
	LLMPromptDatabaseTable string `json:"llmPromptDatabaseTable"`
	ShowQuery              bool   `json:"show_query"`
	FileNameColumn         string `json:"fileNameColumn"`
}
