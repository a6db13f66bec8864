package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/extraction"
	"github.com/jhoicas/parser-config-api/internal/domain/parser"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

// Mensajes del lote de prompts; los clientes existentes los comparan literalmente.
const (
	MsgInvalidPromptBatch = "Invalid data format. Expected an array of prompts."
	MsgMissingMandatory   = "Missing mandatory fields."
)

// PromptUseCase casos de uso de llm_parser_prompt. Un prompt es visible solo para la
// organización dueña de su parser.
type PromptUseCase struct {
	prompts repository.PromptRepository
	owner   ParserOwnership
	tx      ports.TxRunner
}

// NewPromptUseCase construye el caso de uso.
func NewPromptUseCase(prompts repository.PromptRepository, owner ParserOwnership, tx ports.TxRunner) *PromptUseCase {
	return &PromptUseCase{prompts: prompts, owner: owner, tx: tx}
}

// InsertBatch valida el lote completo y lo inserta en una transacción: o entran todos o ninguno.
// Todos los parser_id deben ser de orgID.
func (uc *PromptUseCase) InsertBatch(ctx context.Context, orgID string, in []dto.PromptInput) (*dto.InsertPromptsResult, error) {
	if len(in) == 0 {
		return nil, domain.Invalid(MsgInvalidPromptBatch)
	}
	for i, p := range in {
		if strings.TrimSpace(p.Prompt) == "" || p.DBColumn == "" || p.ColumnType == "" || p.ParserID <= 0 {
			return nil, domain.Invalid(MsgMissingMandatory)
		}
		if err := validatePromptFields(p.DBColumn, p.ColumnType); err != nil {
			return nil, fmt.Errorf("prompt %d: %w", i, err)
		}
	}
	checked := make(map[int64]bool, len(in))
	for _, p := range in {
		if checked[p.ParserID] {
			continue
		}
		if err := uc.owner.Owned(ctx, orgID, p.ParserID); err != nil {
			return nil, err
		}
		checked[p.ParserID] = true
	}

	now := time.Now()
	ids := make([]int64, 0, len(in))
	err := uc.tx.Run(ctx, func(
		_ repository.ParserRepository,
		promptRepo repository.PromptRepository,
		_ repository.TemplateRepository,
	) error {
		for _, p := range in {
			row := &entity.Prompt{
				ParserID:   p.ParserID,
				Prompt:     p.Prompt,
				DBColumn:   p.DBColumn,
				ColumnType: p.ColumnType,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := promptRepo.Create(ctx, row); err != nil {
				return err
			}
			ids = append(ids, row.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.InsertPromptsResult{Inserted: len(ids), IDs: ids}, nil
}

// ListByParser lista los prompts de un parser de orgID.
func (uc *PromptUseCase) ListByParser(ctx context.Context, orgID string, parserID int64) ([]dto.PromptResponse, error) {
	if err := uc.owner.Owned(ctx, orgID, parserID); err != nil {
		return nil, err
	}
	list, err := uc.prompts.ListByParser(ctx, parserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromptResponse, 0, len(list))
	for _, pr := range list {
		out = append(out, *toPromptResponse(pr))
	}
	return out, nil
}

// Update aplica una actualización parcial de un prompt.
func (uc *PromptUseCase) Update(ctx context.Context, orgID string, id int64, in dto.UpdatePromptRequest) (*dto.PromptResponse, error) {
	p, err := uc.load(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if in.Prompt != nil {
		if strings.TrimSpace(*in.Prompt) == "" {
			return nil, domain.Invalid(MsgMissingMandatory)
		}
		p.Prompt = *in.Prompt
	}
	if in.DBColumn != nil {
		p.DBColumn = *in.DBColumn
	}
	if in.ColumnType != nil {
		p.ColumnType = *in.ColumnType
	}
	if err := validatePromptFields(p.DBColumn, p.ColumnType); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := uc.prompts.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPromptResponse(p), nil
}

// Delete elimina un prompt.
func (uc *PromptUseCase) Delete(ctx context.Context, orgID string, id int64) error {
	if _, err := uc.load(ctx, orgID, id); err != nil {
		return err
	}
	return uc.prompts.Delete(ctx, id)
}

// load obtiene el prompt si su parser es de orgID. Uno ajeno se reporta como inexistente.
func (uc *PromptUseCase) load(ctx context.Context, orgID string, id int64) (*entity.Prompt, error) {
	p, err := uc.prompts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.owner.Owned(ctx, orgID, p.ParserID); err != nil {
		if errors.Is(err, domain.ErrParserNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func validatePromptFields(dbColumn, columnType string) error {
	if !parser.ValidIdentifier(dbColumn) {
		return domain.Invalid(fmt.Sprintf("Invalid db_column %q.", dbColumn))
	}
	if !extraction.ValidColumnType(columnType) {
		return domain.Invalid(fmt.Sprintf("Invalid column_type %q.", columnType))
	}
	return nil
}
