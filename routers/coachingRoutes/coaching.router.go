package coachingRoutes

import (
	coachingController "reinvent/controllers/coaching"
	"reinvent/middleware"
	coachingValidator "reinvent/validators/coaching"

	"github.com/gofiber/fiber/v2"
)

// SetupCoachingRoutes sets up the coaching scheduler routes
func SetupCoachingRoutes(app *fiber.App) {
	coachingGroup := app.Group("/coaching", middleware.JWTMiddleware)

	coachingGroup.Get("/coaches", coachingController.GetCoaches)
	coachingGroup.Get("/coach/:coach_id/slots", coachingValidator.AvailableSlots(), coachingController.GetAvailableSlots)
	coachingGroup.Post("/book", coachingValidator.BookSession(), coachingController.BookSession)
	coachingGroup.Get("/sessions", coachingController.GetSessions)
	coachingGroup.Put("/session/:id/status", coachingValidator.UpdateStatus(), coachingController.UpdateSessionStatus)
}
