package dto

import "time"

// PromptInput un elemento del lote de /insert-prompts.
type PromptInput struct {
	Prompt     string `json:"prompt"`
	DBColumn   string `json:"db_column"`
	ColumnType string `json:"column_type"`
	ParserID   int64  `json:"parser_id"`
}

// InsertPromptsRequest cuerpo de /insert-prompts.
type InsertPromptsRequest struct {
	Prompts []PromptInput `json:"prompts"`
}

// InsertPromptsResult filas creadas por el lote, en el orden recibido.
type InsertPromptsResult struct {
	Inserted int     `json:"inserted"`
	IDs      []int64 `json:"ids"`
}

// UpdatePromptRequest actualización parcial de un prompt.
type UpdatePromptRequest struct {
	Prompt     *string `json:"prompt"`
	DBColumn   *string `json:"db_column"`
	ColumnType *string `json:"column_type"`
}

// PromptResponse salida de un prompt.
type PromptResponse struct {
	ID         int64     `json:"id"`
	ParserID   int64     `json:"parser_id"`
	Prompt     string    `json:"prompt"`
	DBColumn   string    `json:"db_column"`
	ColumnType string    `json:"column_type"`
	CreatedAt  time.Time `json:"date_created"`
	UpdatedAt  time.Time `json:"date_updated"`
}
