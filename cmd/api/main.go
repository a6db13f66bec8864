package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/parser-config-api/docs"
	"github.com/jhoicas/parser-config-api/internal/application/usecase"
	"github.com/jhoicas/parser-config-api/internal/domain/parser"
	infraai "github.com/jhoicas/parser-config-api/internal/infrastructure/ai"
	"github.com/jhoicas/parser-config-api/internal/infrastructure/archive"
	"github.com/jhoicas/parser-config-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/parser-config-api/internal/infrastructure/pdf"
	"github.com/jhoicas/parser-config-api/internal/infrastructure/postgres"
	"github.com/jhoicas/parser-config-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/parser-config-api/internal/interfaces/http"
	"github.com/jhoicas/parser-config-api/pkg/config"
	"github.com/jhoicas/parser-config-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	parserRepo := postgres.NewParserRepository(pool)
	promptRepo := postgres.NewPromptRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	browserPromptRepo := postgres.NewBrowserPromptRepository(pool)
	tableRepo := postgres.NewTableBrowserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	target := parser.Target{
		SQL:      cfg.ParserTarget.SQL,
		JDBCURL:  cfg.ParserTarget.JDBCURL(),
		User:     cfg.ParserTarget.User,
		Password: cfg.ParserTarget.Password,
		Database: cfg.ParserTarget.DBName,
	}
	parserUC := usecase.NewParserUseCase(parserRepo, promptRepo, templateRepo, txRunner, target, cfg.App.OrgID)

	// Sin API key el playground responde 503; el resto de la API funciona igual.
	llm, err := infraai.New(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("cliente LLM")
	}
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("LLM sin API key: playground deshabilitado")
	}
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: rutas sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	httpRouter.Middleware(app, log.Zerolog(), cfg.HTTP.AllowOrigins)

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = hostForDocs(cfg.HTTP.Addr())
	doc := docs.SwaggerInfo.ReadDoc()
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(doc),
		Path:        "docs",
		Title:       "Parser Config API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	health := httpRouter.NewHealthHandler(cfg.App.Name, pool)
	app.Get("/health", health.Live)
	app.Get("/health/db", health.DB)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ParserUC:        parserUC,
		PromptUC:        usecase.NewPromptUseCase(promptRepo, parserUC, txRunner),
		TemplateUC:      usecase.NewTemplateUseCase(templateRepo, parserUC),
		BrowserPromptUC: usecase.NewBrowserPromptUseCase(browserPromptRepo),
		TableUC:         usecase.NewTableUseCase(tableRepo, cfg.Browser.AllowedTables),
		ExtractionUC:    usecase.NewExtractionUseCase(parserUC, llm, metrics.LLM{}, cfg.AI.Timeout, cfg.AI.MaxConcurrency),
		ExportUC:        usecase.NewExportUseCase(parserUC, xmlexport.NewExporter(), infrapdf.NewMarotoPDFGenerator(), archive.NewZipBuilder()),
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// hostForDocs cambia 0.0.0.0 por localhost para que "Try it out" funcione en local.
func hostForDocs(addr string) string {
	return strings.Replace(addr, "0.0.0.0", "localhost", 1)
}
