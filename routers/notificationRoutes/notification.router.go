package notificationRoutes

import (
	notificationController "reinvent/controllers/notification"
	"reinvent/middleware"
	notificationValidator "reinvent/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the notification inbox routes
func SetupNotificationRoutes(app *fiber.App) {
	notifGroup := app.Group("/notification", middleware.JWTMiddleware)

	notifGroup.Get("/list", notificationValidator.Filter(), notificationController.GetNotifications)
	notifGroup.Get("/unread-count", notificationController.GetUnreadCount)
	notifGroup.Post("/read-all", notificationController.MarkAllRead)
	notifGroup.Post("/:id/read", notificationValidator.NotificationID(), notificationController.MarkRead)
	notifGroup.Delete("/:id", notificationValidator.NotificationID(), notificationController.DeleteNotification)

	notifGroup.Get("/preferences", notificationController.GetPreferences)
	notifGroup.Put("/preferences", notificationController.UpdatePreferences)
}
