package courseRoutes

import (
	progressController "reinvent/controllers/progress"
	"reinvent/middleware"
	courseValidator "reinvent/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course player progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Progress for every module of a program
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, courseValidator.ProgramID(), progressController.GetModuleProgress)

	// Video position updates (throttled server-side) and section completion
	courseGroup.Post("/module/:module_id/video", middleware.JWTMiddleware, courseValidator.ModuleID(), courseValidator.VideoProgress(), progressController.RecordVideoProgress)
	courseGroup.Post("/module/:module_id/section", middleware.JWTMiddleware, courseValidator.ModuleID(), courseValidator.Section(), progressController.MarkSectionComplete)
}
