package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/usecase"
	"github.com/jhoicas/parser-config-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ParserUC        *usecase.ParserUseCase
	PromptUC        *usecase.PromptUseCase
	TemplateUC      *usecase.TemplateUseCase
	BrowserPromptUC *usecase.BrowserPromptUseCase
	TableUC         *usecase.TableUseCase
	ExtractionUC    *usecase.ExtractionUseCase
	ExportUC        *usecase.ExportUseCase
	JWTSecret       string // vacío: sin autenticación
}

// Router registra las rutas de negocio: las rutas legacy en la raíz y la API REST bajo /api.
// Health, métricas y docs se montan en main y quedan fuera de la autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	auth, writers, admins := guards(deps.JWTSecret)

	parserHandler := NewParserHandler(deps.ParserUC)
	promptHandler := NewPromptHandler(deps.PromptUC)
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	browserHandler := NewBrowserPromptHandler(deps.BrowserPromptUC)
	tableHandler := NewTableHandler(deps.TableUC)
	extractionHandler := NewExtractionHandler(deps.ExtractionUC)
	exportHandler := NewExportHandler(deps.ExportUC)

	// Rutas legacy (mismos cuerpos de respuesta que los clientes existentes)
	app.Post("/create-parser", auth, writers, parserHandler.Create)
	app.Post("/insert-prompts", auth, writers, promptHandler.InsertBatch)
	app.Post("/onboard-template", auth, writers, templateHandler.Onboard)
	app.Post("/get-all-tables-information", auth, tableHandler.BrowseLegacy)

	api := app.Group("/api", auth)

	// Parsers
	parsers := api.Group("/parsers")
	parsers.Get("/", parserHandler.List)
	parsers.Post("/", writers, parserHandler.Create)
	parsers.Get("/:id", parserHandler.GetByID)
	parsers.Put("/:id", writers, parserHandler.Update)
	parsers.Delete("/:id", admins, parserHandler.Delete)
	parsers.Get("/:id/prompts", promptHandler.ListByParser)
	parsers.Post("/:id/extract", writers, extractionHandler.Extract)
	parsers.Get("/:id/export.xml", exportHandler.XML)
	parsers.Get("/:id/report.pdf", exportHandler.PDF)
	parsers.Get("/:id/bundle.zip", exportHandler.Bundle)

	// Prompts
	prompts := api.Group("/prompts")
	prompts.Post("/batch", writers, promptHandler.InsertBatch)
	prompts.Put("/:id", writers, promptHandler.Update)
	prompts.Delete("/:id", admins, promptHandler.Delete)

	// Templates (match antes de /:id)
	templates := api.Group("/templates")
	templates.Get("/", templateHandler.List)
	templates.Post("/", writers, templateHandler.Onboard)
	templates.Post("/match", templateHandler.Match)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Put("/:id", writers, templateHandler.Update)
	templates.Delete("/:id", admins, templateHandler.Delete)

	// Browser automation prompts
	browser := api.Group("/browser-prompts")
	browser.Get("/", browserHandler.List)
	browser.Post("/", writers, browserHandler.Create)
	browser.Get("/:id", browserHandler.GetByID)
	browser.Put("/:id", writers, browserHandler.Update)
	browser.Delete("/:id", admins, browserHandler.Delete)

	// Explorador de tablas
	tables := api.Group("/tables")
	tables.Get("/", tableHandler.List)
	tables.Get("/:table", tableHandler.Browse)
}

// guards devuelve auth, escritura (admin|editor) y borrado (admin).
// Sin secreto JWT los tres dejan pasar todo.
func guards(secret string) (auth, writers, admins fiber.Handler) {
	if secret == "" {
		pass := func(c *fiber.Ctx) error { return c.Next() }
		return pass, pass, pass
	}
	return AuthMiddleware(secret),
		RequireRole(jwt.RoleAdmin, jwt.RoleEditor),
		RequireRole(jwt.RoleAdmin)
}
