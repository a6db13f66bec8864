package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/parser-config-api/internal/interfaces/http"
)

func TestAccessLog_RegistraStatusDelErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.AccessLog(zerolog.New(&buf)))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "no coffee")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "warn", ev["level"])
	assert.Equal(t, float64(http.StatusTeapot), ev["status"])
	assert.Equal(t, "/boom", ev["route"])
	assert.Equal(t, "GET", ev["method"])
}

func TestMiddleware_PanicQuedaEnElLog(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Middleware(app, zerolog.New(&buf), "*")
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("nil map")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "error", ev["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), ev["status"])
	assert.Equal(t, "/panic", ev["route"])
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), ev["request_id"])
}
