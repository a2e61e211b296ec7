package courseValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// idParam validates a positive integer route parameter and stores it under
// the given locals key
func idParam(param, localsKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(localsKey, id)
		return c.Next()
	}
}

func ProgramID() fiber.Handler {
	return idParam("id", "programID", "Program ID")
}

func EnrollmentID() fiber.Handler {
	return idParam("id", "enrollmentID", "Enrollment ID")
}

func ModuleID() fiber.Handler {
	return idParam("module_id", "moduleID", "Module ID")
}

// VideoProgress validates a video position update payload
func VideoProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CurrentTimeSeconds float64 `json:"current_time_seconds"`
			DurationSeconds    float64 `json:"duration_seconds"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CurrentTimeSeconds < 0 {
			errors["current_time_seconds"] = "Playback position cannot be negative!"
		}
		if reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Video duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideoProgress", reqData)
		return c.Next()
	}
}

// Section validates a section-completion payload against the known sections
func Section() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Section string `json:"section"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		section := strings.TrimSpace(reqData.Section)
		valid := false
		for _, s := range models.RequiredSections {
			if s == section {
				valid = true
				break
			}
		}
		if !valid {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"section": "Section must be one of: " + strings.Join(models.RequiredSections, ", "),
			})
		}

		c.Locals("section", section)
		return c.Next()
	}
}
