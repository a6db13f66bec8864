package entity

import "time"

// BrowserPrompt prompt reutilizable para automatización de navegador.
type BrowserPrompt struct {
	ID          int64
	Name        string
	Prompt      string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
