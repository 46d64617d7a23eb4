package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markazy_backend/internals/configs"
	authService "markazy_backend/internals/features/users/auth/service"
	authStore "markazy_backend/internals/features/users/auth/store"
	helper "markazy_backend/internals/helpers"
)

const testSecret = "middleware-test-secret"

func newTestApp(tokens authStore.TokenStore) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": c.Locals(helper.LocUserEmail),
			"role":  c.Locals(helper.LocUserRole),
		})
	})
	app.Get("/centers-only",
		AuthMiddleware(tokens),
		OnlyRole("centers", "centers only"),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp(authStore.NewMemoryTokenStore())

	resp, _ := doRequest(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp(authStore.NewMemoryTokenStore())

	token, err := authService.SignToken(testSecret, "editor@shabab.gov.eg", "news", time.Now())
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/protected", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "editor@shabab.gov.eg")
	assert.Contains(t, body, "news")
}

func TestAuthMiddlewareBlacklistedToken(t *testing.T) {
	configs.JWTSecret = testSecret
	tokens := authStore.NewMemoryTokenStore()
	app := newTestApp(tokens)

	token, err := authService.SignToken(testSecret, "a@b.c", "news", time.Now())
	require.NoError(t, err)

	// The token is still cryptographically valid and unexpired.
	require.NoError(t, tokens.Blacklist(token, time.Now().Add(authService.TokenTTL)))

	resp, body := doRequest(t, app, "/protected", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "invalidated")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp(authStore.NewMemoryTokenStore())

	token, err := authService.SignToken(testSecret, "a@b.c", "news",
		time.Now().Add(-authService.TokenTTL-time.Hour))
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/protected", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "expired")
}

func TestAuthMiddlewareInvalidSignature(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp(authStore.NewMemoryTokenStore())

	token, err := authService.SignToken("some-other-secret", "a@b.c", "news", time.Now())
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "/protected", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRoleExactMatch(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp(authStore.NewMemoryTokenStore())

	centersToken, err := authService.SignToken(testSecret, "c@b.c", "centers", time.Now())
	require.NoError(t, err)
	newsToken, err := authService.SignToken(testSecret, "n@b.c", "news", time.Now())
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "/centers-only", centersToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// There is no role hierarchy; any other role is forbidden.
	resp, body := doRequest(t, app, "/centers-only", newsToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "centers only")
}
