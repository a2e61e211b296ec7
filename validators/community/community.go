package communityValidator

import (
	"strings"

	"reinvent/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ContactForm validates a contact submission with struct tags
func ContactForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name" validate:"required"`
			Email   string `json:"email" validate:"required,email"`
			Subject string `json:"subject"`
			Message string `json:"message" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Message = strings.TrimSpace(reqData.Message)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Message":
					errors["message"] = "Message is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// NewsletterEmail validates a newsletter signup payload
func NewsletterEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email" validate:"required,email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "A valid email is required!",
			})
		}

		c.Locals("newsletterEmail", strings.ToLower(strings.TrimSpace(reqData.Email)))
		return c.Next()
	}
}
