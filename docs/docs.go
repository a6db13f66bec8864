// Package docs registra la especificación OpenAPI (Swagger 2.0) del servicio en swag.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.tmpl.json
var docTemplate string

// SwaggerInfo metadatos que se inyectan en la plantilla; main ajusta Host y Version.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Parser Config API",
	Description:      "CRUD de parsers LLM, prompts, templates, prompts de navegador y explorador de tablas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
