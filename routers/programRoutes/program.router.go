package programRoutes

import (
	programController "reinvent/controllers/program"

	"github.com/gofiber/fiber/v2"
)

// SetupProgramRoutes sets up the public program catalog routes
func SetupProgramRoutes(app *fiber.App) {
	programGroup := app.Group("/program")

	programGroup.Get("/list", programController.GetAllPrograms)
	programGroup.Get("/:slug", programController.GetProgramBySlug)
}
