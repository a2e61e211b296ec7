package prayerValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// RequestID validates the prayer request route parameter
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Prayer request ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid prayer request ID!", nil)
		}

		c.Locals("requestID", id)
		return c.Next()
	}
}

// CreateRequest validates a new prayer request payload
func CreateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
			IsAnonymous bool   `json:"is_anonymous"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.Category == "" {
			reqData.Category = "general"
		}
		if !models.IsValidPrayerCategory(reqData.Category) {
			errors["category"] = "Category must be one of: " + strings.Join(models.PrayerCategories, ", ")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPrayerRequest", reqData)
		return c.Next()
	}
}

// ResponseContent rejects empty or whitespace-only response text
func ResponseContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		content := strings.TrimSpace(reqData.Content)
		if content == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Response text cannot be empty!",
			})
		}

		c.Locals("responseContent", content)
		return c.Next()
	}
}
