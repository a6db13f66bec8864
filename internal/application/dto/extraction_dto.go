package dto

// ExtractRequest texto del documento sobre el que correr los prompts.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse resultado de una corrida del playground.
// Fields trae los valores ya tipados por db_column; Errors los fallos por columna.
type ExtractResponse struct {
	RunID    string            `json:"runId"`
	ParserID int64             `json:"parserId"`
	Provider string            `json:"provider"`
	Fields   map[string]any    `json:"fields"`
	Errors   map[string]string `json:"errors"`
}
