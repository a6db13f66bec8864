package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/parser-config-api/internal/domain"
	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

var templateCols = []string{
	"id", "template_name", "template_matching_text", "template_prompt", "parser_id", "date_created", "date_updated",
}

func TestTemplateRepository_Create_Errores(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"template duplicado", "23505", domain.ErrTemplateExists},
		{"parser inexistente", "23503", domain.ErrParserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewTemplateRepository(mock)
			mock.ExpectQuery("INSERT INTO llm_template_list").
				WithArgs(anyArgs(6)...).
				WillReturnError(&pgconn.PgError{Code: tt.code})

			err := repo.Create(context.Background(), &entity.Template{ParserID: 3, Name: "acme"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTemplateRepository_FindByParserID(t *testing.T) {
	mock := newMock(t)
	repo := NewTemplateRepository(mock)

	prompt := "Extrae el total"
	now := time.Now()
	mock.ExpectQuery("FROM llm_template_list WHERE parser_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows(templateCols).
			AddRow(int64(1), "acme", "ACME S.A.", &prompt, int64(3), now, now))

	tpl, err := repo.FindByParserID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, tpl)
	assert.Equal(t, "ACME S.A.", tpl.MatchingText)
	require.NotNil(t, tpl.Prompt)
	assert.Equal(t, prompt, *tpl.Prompt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_ListByOrg_PromptNulo(t *testing.T) {
	mock := newMock(t)
	repo := NewTemplateRepository(mock)

	now := time.Now()
	mock.ExpectQuery("FROM llm_template_list t\\s+JOIN parser_config p ON p.id = t.parser_id\\s+WHERE p.org_id = \\$1").
		WithArgs("org-1", 10, 0).
		WillReturnRows(mock.NewRows(templateCols).
			AddRow(int64(1), "acme", "ACME", nil, int64(3), now, now))

	list, err := repo.ListByOrg(context.Background(), "org-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Prompt)
}

func TestTemplateRepository_DeleteByParser(t *testing.T) {
	mock := newMock(t)
	repo := NewTemplateRepository(mock)

	mock.ExpectExec("DELETE FROM llm_template_list WHERE parser_id").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	n, err := repo.DeleteByParser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
