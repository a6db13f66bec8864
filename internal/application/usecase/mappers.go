package usecase

import (
	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

func toParserResponse(p *entity.Parser) *dto.ParserResponse {
	if p == nil {
		return nil
	}
	return &dto.ParserResponse{
		ID:         p.ID,
		OrgID:      p.OrgID,
		Name:       p.Name,
		ParserType: p.ParserType,
		Status:     p.Status,
		Config: dto.ParserConfigResponse{
			SQL:                    p.Config.SQL,
			SQLURL:                 p.Config.SQLURL,
			UserName:               p.Config.UserName,
			Database:               p.Config.Database,
			Table:                  p.Config.Table,
			LLMPromptDatabaseTable: p.Config.LLMPromptDatabaseTable,
			ShowQuery:              p.Config.ShowQuery,
			FileNameColumn:         p.Config.FileNameColumn,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPromptResponse(p *entity.Prompt) *dto.PromptResponse {
	if p == nil {
		return nil
	}
	return &dto.PromptResponse{
		ID:         p.ID,
		ParserID:   p.ParserID,
		Prompt:     p.Prompt,
		DBColumn:   p.DBColumn,
		ColumnType: p.ColumnType,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toTemplateResponse(t *entity.Template) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		ID:             t.ID,
		ParserID:       t.ParserID,
		TemplateName:   t.Name,
		MatchingText:   t.MatchingText,
		TemplatePrompt: t.Prompt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toBrowserPromptResponse(p *entity.BrowserPrompt) *dto.BrowserPromptResponse {
	if p == nil {
		return nil
	}
	return &dto.BrowserPromptResponse{
		ID:          p.ID,
		Name:        p.Name,
		Prompt:      p.Prompt,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
