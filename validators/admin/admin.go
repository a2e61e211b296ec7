package adminValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// TargetUser validates the user route parameter for admin user operations
func TargetUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// UpdateRole validates the user route parameter and role payload
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Role {
		case models.RoleMember, models.RoleCoach, models.RoleAdmin:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be MEMBER, COACH or ADMIN!",
			})
		}

		c.Locals("targetUserID", id)
		c.Locals("targetRole", reqData.Role)
		return c.Next()
	}
}

// TestimonialID validates the testimonial route parameter
func TestimonialID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid testimonial ID!", nil)
		}

		c.Locals("testimonialID", id)
		return c.Next()
	}
}
