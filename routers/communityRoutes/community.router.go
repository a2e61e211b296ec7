package communityRoutes

import (
	communityController "reinvent/controllers/community"
	"reinvent/middleware"
	communityValidator "reinvent/validators/community"

	"github.com/gofiber/fiber/v2"
)

// SetupCommunityRoutes sets up testimonial, contact and newsletter routes
func SetupCommunityRoutes(app *fiber.App) {
	communityGroup := app.Group("/community")

	communityGroup.Get("/testimonials", communityController.GetTestimonials)
	communityGroup.Post("/testimonials", middleware.JWTMiddleware, communityController.CreateTestimonial)
	communityGroup.Post("/contact", communityValidator.ContactForm(), communityController.SubmitContactForm)
	communityGroup.Post("/newsletter", communityValidator.NewsletterEmail(), communityController.SubscribeNewsletter)
}
