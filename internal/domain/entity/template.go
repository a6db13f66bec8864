package entity

import "time"

// Template asocia un texto característico de un documento con el parser que lo procesa
// (llm_template_list). Un parser tiene como máximo un template.
type Template struct {
	ID           int64
	ParserID     int64
	Name         string
	MatchingText string
	Prompt       *string // template_prompt es opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
