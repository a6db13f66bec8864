package entity

import "time"

// Prompt es una instrucción de extracción (llm_parser_prompt): el LLM responde con el
// valor que se guarda en DBColumn, tipado según ColumnType.
type Prompt struct {
	ID         int64
	ParserID   int64
	Prompt     string
	DBColumn   string
	ColumnType string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
