package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un checkout limpio no trae docs/swagger.json; la app debe arrancar igual,
// sin la UI y sin pánico al construir el middleware.
func TestRegisterSwagger_SinArchivoNoMontaLaUI(t *testing.T) {
	app := fiber.New()
	registerSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "API de prueba")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el resto de rutas debe seguir sirviendo")
}

func TestRegisterSwagger_ConArchivoSirveLaUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "swagger.json")
	doc := `{"openapi":"3.0.0","info":{"title":"API de prueba","version":"1.0.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	app := fiber.New()
	registerSwagger(app, file, "API de prueba")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
