// file: internals/helpers/response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"markazy_backend/internals/configs"
)

/* ===============================
   Standard success envelope
=================================*/

// JsonOK: generic success (GET detail etc.)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonCreated: success for POST
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonUpdated: success for PUT/PATCH
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonDeleted: success for DELETE
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonList: paginated list. The items land under dataKey so every
// resource keeps its historical payload key (centers, articles, ...).
func JsonList(c *fiber.Ctx, message, dataKey string, items any, p Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"message":     message,
		"count":       p.Count,
		"totalPages":  p.TotalPages,
		"currentPage": p.Page,
		"total":       p.Total,
		dataKey:       items,
	})
}

/* ===============================
   Error envelope
=================================*/

// JsonError: plain error
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonServerError: 500 with the underlying error appended outside
// production, so staging failures are diagnosable from the response.
func JsonServerError(c *fiber.Ctx, message string, err error) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if err != nil && !configs.IsProduction() {
		message = message + ": " + err.Error()
	}
	return JsonError(c, fiber.StatusInternalServerError, message)
}

// JsonErrorWithErrors: validation-style error with a flat message list
func JsonErrorWithErrors(c *fiber.Ctx, status int, message string, errs []string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"errors":  errs,
	})
}

// JsonErrorFields: error plus identifying fields naming exactly which
// inputs failed (missing_ids, existing_clubs, ...).
func JsonErrorFields(c *fiber.Ctx, status int, message string, fields fiber.Map) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
