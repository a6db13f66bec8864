package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/repository"
)

// ============================================================================
// Repositorios en memoria compartidos por los tests
// ============================================================================

type memParserRepo struct {
	mu     sync.Mutex
	nextID int64
	store  map[int64]entity.Parser
}

func newMemParserRepo() *memParserRepo {
	return &memParserRepo{store: map[int64]entity.Parser{}}
}

func (m *memParserRepo) Create(_ context.Context, p *entity.Parser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.store {
		if existing.OrgID == p.OrgID && existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	m.nextID++
	p.ID = m.nextID
	m.store[p.ID] = *p
	return nil
}

func (m *memParserRepo) GetByID(_ context.Context, id int64) (*entity.Parser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memParserRepo) ListByOrg(_ context.Context, orgID, status string, limit, offset int) ([]*entity.Parser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Parser
	for _, p := range m.store {
		if p.OrgID == orgID && (status == "" || p.Status == status) {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memParserRepo) CountByOrg(ctx context.Context, orgID, status string) (int64, error) {
	list, _ := m.ListByOrg(ctx, orgID, status, 1<<30, 0)
	return int64(len(list)), nil
}

func (m *memParserRepo) Update(_ context.Context, p *entity.Parser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[p.ID]; !ok {
		return domain.ErrParserNotFound
	}
	m.store[p.ID] = *p
	return nil
}

func (m *memParserRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrParserNotFound
	}
	delete(m.store, id)
	return nil
}

type memPromptRepo struct {
	mu      sync.Mutex
	nextID  int64
	store   map[int64]entity.Prompt
	parsers *memParserRepo
	failOn  string // db_column cuyo Create falla
}

func newMemPromptRepo(parsers *memParserRepo) *memPromptRepo {
	return &memPromptRepo{store: map[int64]entity.Prompt{}, parsers: parsers}
}

func (m *memPromptRepo) Create(ctx context.Context, p *entity.Prompt) error {
	if parser, _ := m.parsers.GetByID(ctx, p.ParserID); parser == nil {
		return domain.ErrParserNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && p.DBColumn == m.failOn {
		return errBoom
	}
	m.nextID++
	p.ID = m.nextID
	m.store[p.ID] = *p
	return nil
}

func (m *memPromptRepo) GetByID(_ context.Context, id int64) (*entity.Prompt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memPromptRepo) ListByParser(_ context.Context, parserID int64) ([]*entity.Prompt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Prompt
	for _, p := range m.store {
		if p.ParserID == parserID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPromptRepo) Update(_ context.Context, p *entity.Prompt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.store[p.ID] = *p
	return nil
}

func (m *memPromptRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *memPromptRepo) DeleteByParser(_ context.Context, parserID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, p := range m.store {
		if p.ParserID == parserID {
			delete(m.store, id)
			n++
		}
	}
	return n, nil
}

func (m *memPromptRepo) snapshot() map[int64]entity.Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make(map[int64]entity.Prompt, len(m.store))
	for k, v := range m.store {
		cp[k] = v
	}
	return cp
}

func (m *memPromptRepo) restore(s map[int64]entity.Prompt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = s
}

type memTemplateRepo struct {
	mu      sync.Mutex
	nextID  int64
	store   map[int64]entity.Template
	parsers *memParserRepo
}

func newMemTemplateRepo(parsers *memParserRepo) *memTemplateRepo {
	return &memTemplateRepo{store: map[int64]entity.Template{}, parsers: parsers}
}

func (m *memTemplateRepo) Create(_ context.Context, t *entity.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.store {
		if existing.ParserID == t.ParserID {
			return domain.ErrTemplateExists
		}
	}
	m.nextID++
	t.ID = m.nextID
	m.store[t.ID] = *t
	return nil
}

func (m *memTemplateRepo) GetByID(_ context.Context, id int64) (*entity.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *memTemplateRepo) FindByParserID(_ context.Context, parserID int64) (*entity.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.store {
		if t.ParserID == parserID {
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTemplateRepo) ListByOrg(ctx context.Context, orgID string, limit, offset int) ([]*entity.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Template
	for _, t := range m.store {
		p, _ := m.parsers.GetByID(ctx, t.ParserID)
		if p == nil || p.OrgID != orgID {
			continue
		}
		t := t
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memTemplateRepo) Update(_ context.Context, t *entity.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[t.ID]; !ok {
		return domain.ErrNotFound
	}
	m.store[t.ID] = *t
	return nil
}

func (m *memTemplateRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *memTemplateRepo) DeleteByParser(_ context.Context, parserID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.store {
		if t.ParserID == parserID {
			delete(m.store, id)
			return 1, nil
		}
	}
	return 0, nil
}

// memTxRunner emula la transacción: si fn falla restaura los prompts previos.
type memTxRunner struct {
	parsers   *memParserRepo
	prompts   *memPromptRepo
	templates *memTemplateRepo
	runs      int
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	repository.ParserRepository,
	repository.PromptRepository,
	repository.TemplateRepository,
) error) error {
	r.runs++
	before := r.prompts.snapshot()
	if err := fn(r.parsers, r.prompts, r.templates); err != nil {
		r.prompts.restore(before)
		return err
	}
	return nil
}

type memStore struct {
	parsers   *memParserRepo
	prompts   *memPromptRepo
	templates *memTemplateRepo
	tx        *memTxRunner
}

func newMemStore() *memStore {
	parsers := newMemParserRepo()
	prompts := newMemPromptRepo(parsers)
	templates := newMemTemplateRepo(parsers)
	return &memStore{
		parsers:   parsers,
		prompts:   prompts,
		templates: templates,
		tx:        &memTxRunner{parsers: parsers, prompts: prompts, templates: templates},
	}
}

// seedParser inserta un parser activo de orgID y devuelve su ID.
func (s *memStore) seedParser(orgID, name string) int64 {
	p := &entity.Parser{OrgID: orgID, Name: name, Status: entity.ParserStatusActive, ParserType: entity.ParserTypeLLM, CreatedAt: time.Now()}
	_ = s.parsers.Create(context.Background(), p)
	return p.ID
}

var errBoom = errors.New("boom")
