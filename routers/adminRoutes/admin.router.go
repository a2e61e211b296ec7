package adminRoutes

import (
	adminController "reinvent/controllers/admin"
	"reinvent/middleware"
	"reinvent/models"
	adminValidator "reinvent/validators/admin"
	courseValidator "reinvent/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin dashboard routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/stats", adminController.DashboardStats)
	adminGroup.Get("/users", adminController.GetUsers)
	adminGroup.Put("/user/:id/role", adminValidator.UpdateRole(), adminController.UpdateUserRole)
	adminGroup.Put("/user/:id/status", adminValidator.TargetUser(), adminController.ToggleUserStatus)
	adminGroup.Get("/payments", adminController.GetPayments)
	adminGroup.Put("/testimonial/:id/approve", adminValidator.TestimonialID(), adminController.ApproveTestimonial)

	// Program and module content management
	adminGroup.Post("/program", adminController.CreateProgram)
	adminGroup.Put("/program/:id", courseValidator.ProgramID(), adminController.UpdateProgram)
	adminGroup.Post("/program/:id/module", courseValidator.ProgramID(), adminController.CreateModule)
	adminGroup.Put("/module/:module_id", courseValidator.ModuleID(), adminController.UpdateModule)
}
