package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
	"github.com/jhoicas/parser-config-api/internal/domain/parser"
)

func TestValidName(t *testing.T) {
	cases := map[string]bool{
		"Invoice Parser":  true,
		"vendor_42":       true,
		"":                false,
		"drop;table":      false,
		"factura-ñ":       false,
		"  leading space": true,
	}
	for name, want := range cases {
		assert.Equal(t, want, parser.ValidName(name), "nombre %q", name)
	}
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, parser.ValidIdentifier("invoice_lines"))
	assert.True(t, parser.ValidIdentifier("_tmp1"))
	assert.False(t, parser.ValidIdentifier("1table"))
	assert.False(t, parser.ValidIdentifier("invoices; DROP TABLE x"))
	assert.False(t, parser.ValidIdentifier(""))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, parser.ValidStatus(entity.ParserStatusActive))
	assert.True(t, parser.ValidStatus(entity.ParserStatusInactive))
	assert.False(t, parser.ValidStatus("active"))
}

func TestNewConfig(t *testing.T) {
	cfg := parser.NewConfig(parser.Target{
		SQL: "postgresql", JDBCURL: "jdbc:postgresql://db:5432/client",
		User: "u", Password: "p", Database: "client",
	}, "invoices", "file_name")

	assert.Equal(t, "postgresql", cfg.SQL)
	assert.Equal(t, "jdbc:postgresql://db:5432/client", cfg.SQLURL)
	assert.Equal(t, "invoices", cfg.Table)
	assert.Equal(t, "file_name", cfg.FileNameColumn)
	assert.Equal(t, parser.PromptTable, cfg.LLMPromptDatabaseTable)
	assert.False(t, cfg.ShowQuery)
}
