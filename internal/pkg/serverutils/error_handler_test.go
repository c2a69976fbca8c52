package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"nutrition-assistant-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/test", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerMiddleware(t *testing.T) {
	t.Run("validation maps to 400", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return apperr.Validation("bad input")
		})
		status, body := doRequest(t, app)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "bad input")
	})

	t.Run("unauthorized maps to 401", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return apperr.Unauthorized("no token")
		})
		status, _ := doRequest(t, app)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return apperr.NotFound("chat session")
		})
		status, body := doRequest(t, app)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Contains(t, body["message"], "chat session")
	})

	t.Run("backend unavailable maps to 503", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return apperr.BackendUnavailable(assert.AnError)
		})
		status, _ := doRequest(t, app)
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run("fiber errors keep their status", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTeapot, "short and stout")
		})
		status, body := doRequest(t, app)
		assert.Equal(t, fiber.StatusTeapot, status)
		assert.Contains(t, body["message"], "short and stout")
	})

	t.Run("unknown errors become 500 with generic message", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return assert.AnError
		})
		status, body := doRequest(t, app)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error", body["message"])
	})

	t.Run("success passes through untouched", func(t *testing.T) {
		app := newTestApp(func(c *fiber.Ctx) error {
			return c.JSON(SuccessResponse("ok", "payload"))
		})
		status, body := doRequest(t, app)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "payload", body["data"])
	})
}
