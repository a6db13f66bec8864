package dto

import "time"

// CreateBrowserPromptRequest entrada para crear un prompt de navegador.
type CreateBrowserPromptRequest struct {
	Name        string `json:"name"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateBrowserPromptRequest actualización parcial.
type UpdateBrowserPromptRequest struct {
	Name        *string `json:"name"`
	Prompt      *string `json:"prompt"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// BrowserPromptResponse salida de un prompt de navegador.
type BrowserPromptResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Prompt      string    `json:"prompt"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"date_created"`
	UpdatedAt   time.Time `json:"date_updated"`
}

// BrowserPromptListResponse lista paginada.
type BrowserPromptListResponse struct {
	Items []BrowserPromptResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
