package dto

import "time"

// OnboardTemplateRequest cuerpo de /onboard-template.
type OnboardTemplateRequest struct {
	ParserID              int64   `json:"parserId"`
	TemplateName          string  `json:"templateName"`
	TextToMatchInTemplate string  `json:"textToMatchInTemplate"`
	TemplatePrompt        *string `json:"template_prompt"`
}

// OnboardTemplateResponse salida del alta: conserva templateId en la raíz.
type OnboardTemplateResponse struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	TemplateID int64  `json:"templateId"`
}

// UpdateTemplateRequest actualización parcial de un template.
type UpdateTemplateRequest struct {
	TemplateName          *string `json:"templateName"`
	TextToMatchInTemplate *string `json:"textToMatchInTemplate"`
	TemplatePrompt        *string `json:"template_prompt"`
}

// MatchTemplateRequest texto de un documento a clasificar.
type MatchTemplateRequest struct {
	Text string `json:"text"`
}

// TemplateResponse salida de un template.
type TemplateResponse struct {
	ID             int64     `json:"id"`
	ParserID       int64     `json:"parser_id"`
	TemplateName   string    `json:"template_name"`
	MatchingText   string    `json:"template_matching_text"`
	TemplatePrompt *string   `json:"template_prompt"`
	CreatedAt      time.Time `json:"date_created"`
	UpdatedAt      time.Time `json:"date_updated"`
}

// TemplateListResponse lista paginada de templates.
type TemplateListResponse struct {
	Items []TemplateResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
