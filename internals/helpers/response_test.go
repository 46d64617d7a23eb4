package helper

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markazy_backend/internals/configs"
)

func serverErrorBody(t *testing.T, appEnv string) string {
	t.Helper()

	prev := configs.AppEnv
	configs.AppEnv = appEnv
	t.Cleanup(func() { configs.AppEnv = prev })

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return JsonServerError(c, "Failed to fetch centers", errors.New("pq: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestJsonServerErrorShowsDetailOutsideProduction(t *testing.T) {
	body := serverErrorBody(t, "development")
	assert.True(t, strings.Contains(body, "Failed to fetch centers"))
	assert.True(t, strings.Contains(body, "connection refused"))
}

func TestJsonServerErrorHidesDetailInProduction(t *testing.T) {
	body := serverErrorBody(t, "production")
	assert.True(t, strings.Contains(body, "Failed to fetch centers"))
	assert.False(t, strings.Contains(body, "connection refused"))
}
