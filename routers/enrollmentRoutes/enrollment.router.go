package enrollmentRoutes

import (
	enrollmentController "reinvent/controllers/enrollment"
	"reinvent/middleware"
	courseValidator "reinvent/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment and checkout routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/enrollment")

	// Checkout handoff to the payment provider
	enrollGroup.Post("/checkout/:id", middleware.JWTMiddleware, courseValidator.ProgramID(), enrollmentController.CreateCheckout)

	// Called by the provider webhook / return-page poll, no auth
	enrollGroup.Post("/confirm", enrollmentController.ConfirmPayment)

	enrollGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.EnrollmentID(), enrollmentController.GetEnrollment)
	enrollGroup.Post("/:id/cancel", middleware.JWTMiddleware, courseValidator.EnrollmentID(), enrollmentController.CancelEnrollment)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, enrollmentController.GetEnrollments)
}
