package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
)

func TestMarotoPDFGenerator_Generate(t *testing.T) {
	prompt := "Fechas en formato dd/mm"
	doc := &dto.ParserDetailResponse{
		ParserResponse: dto.ParserResponse{
			ID: 3, Name: "Invoices", OrgID: "org-1", ParserType: "llm-parser", Status: "Active",
			Config: dto.ParserConfigResponse{
				SQL: "postgresql", SQLURL: "jdbc:postgresql://db:5432/client", Database: "client",
				Table: "invoices", FileNameColumn: "file_name", LLMPromptDatabaseTable: "llm_parser_prompt",
			},
			UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		Prompts: []dto.PromptResponse{
			{DBColumn: "invoice_number", ColumnType: "string", Prompt: "Número de factura"},
			{DBColumn: "total", ColumnType: "decimal", Prompt: "Total a pagar"},
		},
		Template: &dto.TemplateResponse{TemplateName: "acme", MatchingText: "ACME S.A.", TemplatePrompt: &prompt},
	}

	out, err := NewMarotoPDFGenerator().Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoPDFGenerator_SinPromptsNiTemplate(t *testing.T) {
	out, err := NewMarotoPDFGenerator().Generate(&dto.ParserDetailResponse{
		ParserResponse: dto.ParserResponse{ID: 1, Name: "Vacío", Status: "Inactive"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = NewMarotoPDFGenerator().Generate(nil)
	assert.Error(t, err)
}
