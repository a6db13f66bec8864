package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/parser"
)

var testTarget = parser.Target{
	SQL:      "postgresql",
	JDBCURL:  "jdbc:postgresql://db:5432/client",
	User:     "loader",
	Password: "s3cret",
	Database: "client",
}

func newParserUC(s *memStore) *ParserUseCase {
	return NewParserUseCase(s.parsers, s.prompts, s.templates, s.tx, testTarget, " org-env ")
}

func TestParserUseCase_Create(t *testing.T) {
	s := newMemStore()
	uc := newParserUC(s)

	out, err := uc.Create(context.Background(), "", dto.CreateParserRequest{
		ParserName: "Invoice Parser_2", DatabaseTableName: "invoices", DBTableFileNameColumn: "file_name",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "org-env", out.OrgID)

	stored, _ := s.parsers.GetByID(context.Background(), out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.ParserTypeLLM, stored.ParserType)
	assert.Equal(t, entity.ParserStatusActive, stored.Status)
	assert.Equal(t, entity.ParserConfig{
		SQL:                    "postgresql",
		SQLURL:                 "jdbc:postgresql://db:5432/client",
		UserName:               "loader",
		Password:               "s3cret",
		Database:               "client",
		Table:                  "invoices",
		LLMPromptDatabaseTable: "llm_parser_prompt",
		FileNameColumn:         "file_name",
	}, stored.Config)
}

func TestParserUseCase_Create_OrgDelToken(t *testing.T) {
	s := newMemStore()
	out, err := newParserUC(s).Create(context.Background(), "org-token", dto.CreateParserRequest{ParserName: "A"})
	require.NoError(t, err)
	assert.Equal(t, "org-token", out.OrgID)
}

func TestParserUseCase_Create_NombreInvalido(t *testing.T) {
	uc := newParserUC(newMemStore())
	for _, name := range []string{"", "bad-name", "drop;table", "ñandú"} {
		_, err := uc.Create(context.Background(), "", dto.CreateParserRequest{ParserName: name})
		require.ErrorIs(t, err, domain.ErrInvalidInput, name)
		assert.EqualError(t, err, "Invalid parser name.")
	}
}

func TestParserUseCase_Create_TablaInvalida(t *testing.T) {
	uc := newParserUC(newMemStore())
	_, err := uc.Create(context.Background(), "", dto.CreateParserRequest{ParserName: "ok", DatabaseTableName: "x; DROP"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParserUseCase_Create_Duplicado(t *testing.T) {
	uc := newParserUC(newMemStore())
	_, err := uc.Create(context.Background(), "", dto.CreateParserRequest{ParserName: "dup"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "", dto.CreateParserRequest{ParserName: "dup"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestParserUseCase_Get_OtraOrganizacion(t *testing.T) {
	s := newMemStore()
	id := s.seedParser("org-a", "A")

	_, err := newParserUC(s).Get(context.Background(), "org-b", id)
	assert.ErrorIs(t, err, domain.ErrParserNotFound)
}

func TestParserUseCase_Get_ConPromptsYTemplate(t *testing.T) {
	s := newMemStore()
	id := s.seedParser("org-env", "A")
	ctx := context.Background()
	require.NoError(t, s.prompts.Create(ctx, &entity.Prompt{ParserID: id, Prompt: "Total", DBColumn: "total", ColumnType: "decimal"}))
	require.NoError(t, s.templates.Create(ctx, &entity.Template{ParserID: id, Name: "acme", MatchingText: "ACME"}))

	out, err := newParserUC(s).Get(ctx, "", id)
	require.NoError(t, err)
	require.Len(t, out.Prompts, 1)
	assert.Equal(t, "total", out.Prompts[0].DBColumn)
	require.NotNil(t, out.Template)
	assert.Equal(t, "ACME", out.Template.MatchingText)
}

func TestParserUseCase_List(t *testing.T) {
	s := newMemStore()
	s.seedParser("org-env", "A")
	s.seedParser("org-env", "B")
	s.seedParser("other", "C")

	out, err := newParserUC(s).List(context.Background(), "", dto.ParserListRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "B", out.Items[0].Name)
	assert.Equal(t, int64(2), out.Page.Total)
	assert.Equal(t, 20, out.Page.Limit)

	_, err = newParserUC(s).List(context.Background(), "", dto.ParserListRequest{Status: "Borrado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParserUseCase_Update(t *testing.T) {
	s := newMemStore()
	uc := newParserUC(s)
	created, err := uc.Create(context.Background(), "", dto.CreateParserRequest{ParserName: "A", DatabaseTableName: "old"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	status := entity.ParserStatusInactive
	table := "new_table"
	out, err := uc.Update(context.Background(), "", created.ID, dto.UpdateParserRequest{Status: &status, DatabaseTableName: &table})
	require.NoError(t, err)
	assert.Equal(t, entity.ParserStatusInactive, out.Status)
	assert.Equal(t, "new_table", out.Config.Table)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt))

	bad := "Deleted"
	_, err = uc.Update(context.Background(), "", created.ID, dto.UpdateParserRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParserUseCase_Delete_Cascada(t *testing.T) {
	s := newMemStore()
	ctx := context.Background()
	id := s.seedParser("org-env", "A")
	other := s.seedParser("org-env", "B")
	require.NoError(t, s.prompts.Create(ctx, &entity.Prompt{ParserID: id, DBColumn: "a"}))
	require.NoError(t, s.prompts.Create(ctx, &entity.Prompt{ParserID: other, DBColumn: "b"}))
	require.NoError(t, s.templates.Create(ctx, &entity.Template{ParserID: id, Name: "t", MatchingText: "x"}))

	require.NoError(t, newParserUC(s).Delete(ctx, "", id))

	p, _ := s.parsers.GetByID(ctx, id)
	assert.Nil(t, p)
	left, _ := s.prompts.ListByParser(ctx, id)
	assert.Empty(t, left)
	kept, _ := s.prompts.ListByParser(ctx, other)
	assert.Len(t, kept, 1)
	tpl, _ := s.templates.FindByParserID(ctx, id)
	assert.Nil(t, tpl)
	assert.Equal(t, 1, s.tx.runs)

	assert.ErrorIs(t, newParserUC(s).Delete(ctx, "", id), domain.ErrParserNotFound)
}
