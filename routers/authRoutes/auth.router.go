package authRoutes

import (
	authController "reinvent/controllers/auth"
	"reinvent/middleware"
	authValidator "reinvent/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
	userGroup.Put("/profile", middleware.JWTMiddleware, authController.UpdateProfile)
}
