package controller

import (
	"context"
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

// newDryRunDB builds a gorm handle that composes statements without
// touching a real database, enough for handlers that reject bad input
// before running a query.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func listPools(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	ctrl := NewSwimmingPoolController(newDryRunDB(t))
	app := fiber.New()
	app.Get("/api/swimming-pools", ctrl.GetAll)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestGetAllRejectsNonNumericYearFrom(t *testing.T) {
	resp, body := listPools(t, "/api/swimming-pools?year_from=abc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "year_from must be a number")
}

func TestGetAllRejectsNonNumericYearTo(t *testing.T) {
	resp, body := listPools(t, "/api/swimming-pools?year_to=19x9")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "year_to must be a number")
}

type ctxTagKey struct{}

func TestQueriesCarryRequestContext(t *testing.T) {
	ctrl := NewSwimmingPoolController(newDryRunDB(t))
	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		c.SetUserContext(context.WithValue(c.UserContext(), ctxTagKey{}, "tagged"))
		tx := ctrl.db(c)
		require.NotNil(t, tx.Statement)
		assert.Equal(t, "tagged", tx.Statement.Context.Value(ctxTagKey{}))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/check", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
