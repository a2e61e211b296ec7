package notificationValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// NotificationID validates the notification route parameter
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Notification ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification ID!", nil)
		}

		c.Locals("notificationID", id)
		return c.Next()
	}
}

// Filter validates the optional ?filter query parameter
func Filter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := c.Query("filter", models.FilterAll)
		if filter != models.FilterAll && filter != models.FilterUnread && filter != models.FilterRead {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"filter": "Filter must be one of: all, unread, read",
			})
		}
		return c.Next()
	}
}
