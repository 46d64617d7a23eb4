package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func listCenters(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	ctrl := NewCenterController(db, nil)
	app := fiber.New()
	app.Get("/api/centers", ctrl.GetAll)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestGetAllRejectsNonNumericMinPrice(t *testing.T) {
	resp, body := listCenters(t, "/api/centers?min_price=abc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "min_price must be a number")
}

func TestGetAllRejectsNonNumericMaxPrice(t *testing.T) {
	resp, body := listCenters(t, "/api/centers?max_price=1,000")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "max_price must be a number")
}
