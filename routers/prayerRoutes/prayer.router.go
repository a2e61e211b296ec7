package prayerRoutes

import (
	prayerController "reinvent/controllers/prayer"
	"reinvent/middleware"
	prayerValidator "reinvent/validators/prayer"

	"github.com/gofiber/fiber/v2"
)

// SetupPrayerRoutes sets up the prayer wall routes
func SetupPrayerRoutes(app *fiber.App) {
	prayerGroup := app.Group("/prayer")

	prayerGroup.Get("/list", middleware.JWTMiddleware, prayerController.GetPrayerRequests)
	prayerGroup.Post("/create", middleware.JWTMiddleware, prayerValidator.CreateRequest(), prayerController.CreatePrayerRequest)
	prayerGroup.Post("/:id/response", middleware.JWTMiddleware, prayerValidator.RequestID(), prayerValidator.ResponseContent(), prayerController.AddResponse)
	prayerGroup.Post("/:id/support", middleware.JWTMiddleware, prayerValidator.RequestID(), prayerController.ToggleSupport)
	prayerGroup.Delete("/:id", middleware.JWTMiddleware, prayerValidator.RequestID(), prayerController.DeactivateRequest)
}
