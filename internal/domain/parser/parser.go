// Package parser reúne las reglas de negocio de un parser LLM: validación de nombres,
// identificadores SQL y armado del blob de configuración.
package parser

import (
	"regexp"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// PromptTable tabla de la que el servicio de parsing lee los prompts.
const PromptTable = "llm_parser_prompt"

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)
)

// Target datos de conexión de la base donde el parser vuelca lo extraído.
type Target struct {
	SQL      string
	JDBCURL  string
	User     string
	Password string
	Database string
}

// ValidName informa si name es un nombre de parser aceptable (letras, dígitos, _ y espacios).
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// ValidIdentifier informa si s puede usarse como nombre de tabla o columna SQL.
func ValidIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// ValidStatus informa si s es un estado de parser conocido.
func ValidStatus(s string) bool {
	return s == entity.ParserStatusActive || s == entity.ParserStatusInactive
}

// NewConfig arma el blob de configuración de un parser nuevo.
func NewConfig(t Target, table, fileNameColumn string) entity.ParserConfig {
	return entity.ParserConfig{
		SQL:                    t.SQL,
		SQLURL:                 t.JDBCURL,
		UserName:               t.User,
		Password:               t.Password,
		Database:               t.Database,
		Table:                  table,
		LLMPromptDatabaseTable: PromptTable,
		ShowQuery:              false,
		FileNameColumn:         fileNameColumn,
	}
}
