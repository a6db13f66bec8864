package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Middleware registra la cadena común de la API. recover va dentro de AccessLog para que
// un panic también quede en el log de acceso y en las métricas como 500.
func Middleware(app *fiber.App, logger zerolog.Logger, allowOrigins string) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(AccessLog(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, If-None-Match",
	}))
}
