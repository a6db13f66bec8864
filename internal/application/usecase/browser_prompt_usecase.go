package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

// BrowserPromptUseCase CRUD de prompts de automatización de navegador.
type BrowserPromptUseCase struct {
	repo repository.BrowserPromptRepository
}

// NewBrowserPromptUseCase construye el caso de uso.
func NewBrowserPromptUseCase(repo repository.BrowserPromptRepository) *BrowserPromptUseCase {
	return &BrowserPromptUseCase{repo: repo}
}

// Create crea un prompt; sin isActive queda activo.
func (uc *BrowserPromptUseCase) Create(ctx context.Context, in dto.CreateBrowserPromptRequest) (*dto.BrowserPromptResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Prompt) == "" {
		return nil, domain.Invalid(MsgMissingRequired)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	p := &entity.BrowserPrompt{
		Name:        name,
		Prompt:      in.Prompt,
		Description: in.Description,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toBrowserPromptResponse(p), nil
}

// Get obtiene un prompt por ID.
func (uc *BrowserPromptUseCase) Get(ctx context.Context, id int64) (*dto.BrowserPromptResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toBrowserPromptResponse(p), nil
}

// List lista prompts; activeOnly nil no filtra.
func (uc *BrowserPromptUseCase) List(ctx context.Context, activeOnly *bool, page dto.PageRequest) (*dto.BrowserPromptListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, activeOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrowserPromptResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toBrowserPromptResponse(p))
	}
	return &dto.BrowserPromptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica una actualización parcial.
func (uc *BrowserPromptUseCase) Update(ctx context.Context, id int64, in dto.UpdateBrowserPromptRequest) (*dto.BrowserPromptResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.Invalid(MsgMissingRequired)
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Prompt != nil {
		if strings.TrimSpace(*in.Prompt) == "" {
			return nil, domain.Invalid(MsgMissingRequired)
		}
		p.Prompt = *in.Prompt
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toBrowserPromptResponse(p), nil
}

// Delete elimina un prompt.
func (uc *BrowserPromptUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
