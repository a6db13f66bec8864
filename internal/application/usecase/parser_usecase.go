package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/parser"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

// ParserReader lo que necesitan playground y exportaciones: la definición completa de un parser.
type ParserReader interface {
	Get(ctx context.Context, orgID string, id int64) (*dto.ParserDetailResponse, error)
}

// ParserOwnership resuelve la organización efectiva y verifica que un parser le pertenezca.
// Prompts y templates la usan para no cruzar datos entre organizaciones.
type ParserOwnership interface {
	ResolveOrg(orgID string) string
	Owned(ctx context.Context, orgID string, id int64) error
}

// ParserUseCase casos de uso de parser_config.
// Un parser pertenece a una organización: la del token o, sin auth, la de ORG_ID.
type ParserUseCase struct {
	parsers    repository.ParserRepository
	prompts    repository.PromptRepository
	templates  repository.TemplateRepository
	tx         ports.TxRunner
	target     parser.Target
	defaultOrg string
}

// NewParserUseCase construye el caso de uso.
func NewParserUseCase(
	parsers repository.ParserRepository,
	prompts repository.PromptRepository,
	templates repository.TemplateRepository,
	tx ports.TxRunner,
	target parser.Target,
	defaultOrg string,
) *ParserUseCase {
	return &ParserUseCase{
		parsers:    parsers,
		prompts:    prompts,
		templates:  templates,
		tx:         tx,
		target:     target,
		defaultOrg: strings.TrimSpace(defaultOrg),
	}
}

func (uc *ParserUseCase) org(orgID string) string {
	if s := strings.TrimSpace(orgID); s != "" {
		return s
	}
	return uc.defaultOrg
}

// Create registra un parser LLM activo con el blob de configuración armado desde el destino.
func (uc *ParserUseCase) Create(ctx context.Context, orgID string, in dto.CreateParserRequest) (*dto.ParserResponse, error) {
	if in.ParserName == "" || !parser.ValidName(in.ParserName) {
		return nil, domain.Invalid("Invalid parser name.")
	}
	table := strings.TrimSpace(in.DatabaseTableName)
	if table != "" && !parser.ValidIdentifier(table) {
		return nil, domain.Invalid("Invalid database table name.")
	}
	column := strings.TrimSpace(in.DBTableFileNameColumn)
	if column != "" && !parser.ValidIdentifier(column) {
		return nil, domain.Invalid("Invalid file name column.")
	}

	now := time.Now()
	p := &entity.Parser{
		OrgID:      uc.org(orgID),
		Name:       in.ParserName,
		Config:     parser.NewConfig(uc.target, table, column),
		ParserType: entity.ParserTypeLLM,
		Status:     entity.ParserStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.parsers.Create(ctx, p); err != nil {
		return nil, err
	}
	return toParserResponse(p), nil
}

// Get devuelve el parser con sus prompts y su template.
func (uc *ParserUseCase) Get(ctx context.Context, orgID string, id int64) (*dto.ParserDetailResponse, error) {
	p, err := uc.load(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	prompts, err := uc.prompts.ListByParser(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl, err := uc.templates.FindByParserID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.ParserDetailResponse{
		ParserResponse: *toParserResponse(p),
		Prompts:        make([]dto.PromptResponse, 0, len(prompts)),
		Template:       toTemplateResponse(tpl),
	}
	for _, pr := range prompts {
		out.Prompts = append(out.Prompts, *toPromptResponse(pr))
	}
	return out, nil
}

// List lista los parsers de la organización, más recientes primero.
func (uc *ParserUseCase) List(ctx context.Context, orgID string, in dto.ParserListRequest) (*dto.ParserListResponse, error) {
	if in.Status != "" && !parser.ValidStatus(in.Status) {
		return nil, domain.Invalid("Invalid status. Use Active or Inactive.")
	}
	in.DefaultPage()
	org := uc.org(orgID)
	list, err := uc.parsers.ListByOrg(ctx, org, in.Status, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.parsers.CountByOrg(ctx, org, in.Status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ParserResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toParserResponse(p))
	}
	return &dto.ParserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Update aplica una actualización parcial; tabla y columna se reescriben dentro del blob.
func (uc *ParserUseCase) Update(ctx context.Context, orgID string, id int64, in dto.UpdateParserRequest) (*dto.ParserResponse, error) {
	p, err := uc.load(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if !parser.ValidName(*in.Name) {
			return nil, domain.Invalid("Invalid parser name.")
		}
		p.Name = *in.Name
	}
	if in.Status != nil {
		if !parser.ValidStatus(*in.Status) {
			return nil, domain.Invalid("Invalid status. Use Active or Inactive.")
		}
		p.Status = *in.Status
	}
	if in.DatabaseTableName != nil {
		table := strings.TrimSpace(*in.DatabaseTableName)
		if table != "" && !parser.ValidIdentifier(table) {
			return nil, domain.Invalid("Invalid database table name.")
		}
		p.Config.Table = table
	}
	if in.DBTableFileNameColumn != nil {
		column := strings.TrimSpace(*in.DBTableFileNameColumn)
		if column != "" && !parser.ValidIdentifier(column) {
			return nil, domain.Invalid("Invalid file name column.")
		}
		p.Config.FileNameColumn = column
	}
	p.UpdatedAt = time.Now()
	if err := uc.parsers.Update(ctx, p); err != nil {
		return nil, err
	}
	return toParserResponse(p), nil
}

// Delete borra en una sola transacción los prompts, el template y el parser.
func (uc *ParserUseCase) Delete(ctx context.Context, orgID string, id int64) error {
	if _, err := uc.load(ctx, orgID, id); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(
		parserRepo repository.ParserRepository,
		promptRepo repository.PromptRepository,
		templateRepo repository.TemplateRepository,
	) error {
		if _, err := promptRepo.DeleteByParser(ctx, id); err != nil {
			return err
		}
		if _, err := templateRepo.DeleteByParser(ctx, id); err != nil {
			return err
		}
		return parserRepo.Delete(ctx, id)
	})
}

// ResolveOrg devuelve la organización del token o, si viene vacía, la de ORG_ID.
func (uc *ParserUseCase) ResolveOrg(orgID string) string { return uc.org(orgID) }

// Owned devuelve ErrParserNotFound si el parser no existe o es de otra organización.
func (uc *ParserUseCase) Owned(ctx context.Context, orgID string, id int64) error {
	_, err := uc.load(ctx, orgID, id)
	return err
}

// load obtiene el parser y verifica que sea de la organización. Uno ajeno se reporta como inexistente.
func (uc *ParserUseCase) load(ctx context.Context, orgID string, id int64) (*entity.Parser, error) {
	if id <= 0 {
		return nil, domain.ErrParserNotFound
	}
	p, err := uc.parsers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener parser %d: %w", id, err)
	}
	if p == nil || p.OrgID != uc.org(orgID) {
		return nil, domain.ErrParserNotFound
	}
	return p, nil
}
