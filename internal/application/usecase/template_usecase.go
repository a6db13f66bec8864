package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
	"github.com/jhoicas/parser-config-api/internal/domain/template"
)

// MsgMissingRequired mensaje de validación del alta de templates.
const MsgMissingRequired = "Missing required fields"

// matchBatch tamaño de página al recorrer templates para el matching.
const matchBatch = 500

// TemplateUseCase casos de uso de llm_template_list, acotados a la organización del parser.
type TemplateUseCase struct {
	templates repository.TemplateRepository
	owner     ParserOwnership
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(templates repository.TemplateRepository, owner ParserOwnership) *TemplateUseCase {
	return &TemplateUseCase{templates: templates, owner: owner}
}

// Onboard da de alta el template de un parser. Un parser admite un solo template:
// se consulta antes de insertar y la restricción única cubre la carrera entre dos altas.
func (uc *TemplateUseCase) Onboard(ctx context.Context, orgID string, in dto.OnboardTemplateRequest) (*dto.TemplateResponse, error) {
	if in.ParserID <= 0 || strings.TrimSpace(in.TemplateName) == "" || strings.TrimSpace(in.TextToMatchInTemplate) == "" {
		return nil, domain.Invalid(MsgMissingRequired)
	}
	if err := uc.owner.Owned(ctx, orgID, in.ParserID); err != nil {
		return nil, err
	}
	existing, err := uc.templates.FindByParserID(ctx, in.ParserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrTemplateExists
	}

	now := time.Now()
	t := &entity.Template{
		ParserID:     in.ParserID,
		Name:         in.TemplateName,
		MatchingText: in.TextToMatchInTemplate,
		Prompt:       in.TemplatePrompt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// Get obtiene un template por ID.
func (uc *TemplateUseCase) Get(ctx context.Context, orgID string, id int64) (*dto.TemplateResponse, error) {
	t, err := uc.load(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// List lista los templates de la organización con paginación.
func (uc *TemplateUseCase) List(ctx context.Context, orgID string, page dto.PageRequest) (*dto.TemplateListResponse, error) {
	page.DefaultPage()
	list, err := uc.templates.ListByOrg(ctx, uc.owner.ResolveOrg(orgID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return &dto.TemplateListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica una actualización parcial. El parser de un template no se cambia.
func (uc *TemplateUseCase) Update(ctx context.Context, orgID string, id int64, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	t, err := uc.load(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if in.TemplateName != nil {
		if strings.TrimSpace(*in.TemplateName) == "" {
			return nil, domain.Invalid(MsgMissingRequired)
		}
		t.Name = *in.TemplateName
	}
	if in.TextToMatchInTemplate != nil {
		if strings.TrimSpace(*in.TextToMatchInTemplate) == "" {
			return nil, domain.Invalid(MsgMissingRequired)
		}
		t.MatchingText = *in.TextToMatchInTemplate
	}
	if in.TemplatePrompt != nil {
		t.Prompt = in.TemplatePrompt
	}
	t.UpdatedAt = time.Now()
	if err := uc.templates.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// Delete elimina un template.
func (uc *TemplateUseCase) Delete(ctx context.Context, orgID string, id int64) error {
	if _, err := uc.load(ctx, orgID, id); err != nil {
		return err
	}
	return uc.templates.Delete(ctx, id)
}

// Match devuelve, entre los templates de la organización, aquel cuyo texto característico
// aparece en text.
func (uc *TemplateUseCase) Match(ctx context.Context, orgID string, in dto.MatchTemplateRequest) (*dto.TemplateResponse, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.Invalid("text is required.")
	}
	org := uc.owner.ResolveOrg(orgID)
	var all []*entity.Template
	for offset := 0; ; offset += matchBatch {
		page, err := uc.templates.ListByOrg(ctx, org, matchBatch, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < matchBatch {
			break
		}
	}
	best := template.Best(in.Text, all)
	if best == nil {
		return nil, domain.ErrNotFound
	}
	return toTemplateResponse(best), nil
}

// load obtiene el template si su parser es de orgID. Uno ajeno se reporta como inexistente.
func (uc *TemplateUseCase) load(ctx context.Context, orgID string, id int64) (*entity.Template, error) {
	t, err := uc.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.owner.Owned(ctx, orgID, t.ParserID); err != nil {
		if errors.Is(err, domain.ErrParserNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
