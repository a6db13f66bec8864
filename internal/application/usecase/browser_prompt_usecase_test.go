package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

type memBrowserPromptRepo struct {
	store  map[int64]entity.BrowserPrompt
	nextID int64
	filter *bool
}

func (m *memBrowserPromptRepo) Create(_ context.Context, p *entity.BrowserPrompt) error {
	for _, e := range m.store {
		if e.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	m.nextID++
	p.ID = m.nextID
	m.store[p.ID] = *p
	return nil
}

func (m *memBrowserPromptRepo) GetByID(_ context.Context, id int64) (*entity.BrowserPrompt, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memBrowserPromptRepo) List(_ context.Context, activeOnly *bool, _, _ int) ([]*entity.BrowserPrompt, error) {
	m.filter = activeOnly
	var out []*entity.BrowserPrompt
	for _, p := range m.store {
		if activeOnly == nil || p.IsActive == *activeOnly {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (m *memBrowserPromptRepo) Update(_ context.Context, p *entity.BrowserPrompt) error {
	m.store[p.ID] = *p
	return nil
}

func (m *memBrowserPromptRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func TestBrowserPromptUseCase_CRUD(t *testing.T) {
	repo := &memBrowserPromptRepo{store: map[int64]entity.BrowserPrompt{}}
	uc := NewBrowserPromptUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateBrowserPromptRequest{Name: " login ", Prompt: "Abre el portal"})
	require.NoError(t, err)
	assert.Equal(t, "login", created.Name)
	assert.True(t, created.IsActive)

	_, err = uc.Create(ctx, dto.CreateBrowserPromptRequest{Name: "login", Prompt: "otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateBrowserPromptRequest{Name: "sin prompt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	off := false
	updated, err := uc.Update(ctx, created.ID, dto.UpdateBrowserPromptRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	on := true
	list, err := uc.List(ctx, &on, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Equal(t, &on, repo.filter)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
