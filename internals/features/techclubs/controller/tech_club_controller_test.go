package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// Two requests can pass the pre-insert name check and race to the
// unique index. The losing insert must surface as 409, not 500.
func TestCreateMapsDuplicateInsertToConflict(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	require.NoError(t, db.Callback().Create().Replace("gorm:create", func(tx *gorm.DB) {
		tx.AddError(gorm.ErrDuplicatedKey)
	}))

	ctrl := NewTechClubController(db)
	app := fiber.New()
	app.Post("/api/tech-clubs", ctrl.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/tech-clubs",
		strings.NewReader(`{"name":"Robotics Club"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "Tech club with this name already exists")
}
