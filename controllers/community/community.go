package communityController

import (
	"log"
	"strings"

	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTestimonials lists approved, featured testimonials for marketing pages
func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := database.Database.Db.
		Where("is_approved = ? AND is_featured = ?", true, true).
		Order("created_at desc").
		Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	userIDs := make([]uint, 0, len(testimonials))
	seen := make(map[uint]bool)
	for _, t := range testimonials {
		if !seen[t.UserID] {
			seen[t.UserID] = true
			userIDs = append(userIDs, t.UserID)
		}
	}
	if len(userIDs) > 0 {
		var users []models.User
		database.Database.Db.Where("id IN ?", userIDs).Find(&users)
		names := make(map[uint]string, len(users))
		for _, user := range users {
			names[user.ID] = user.FullName
		}
		for i := range testimonials {
			testimonials[i].AuthorName = names[testimonials[i].UserID]
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", testimonials)
}

// CreateTestimonial submits a testimonial for admin approval
func CreateTestimonial(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Content string `json:"content"`
		Rating  int    `json:"rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Content) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"content": "Testimonial content is required!"})
	}
	if reqData.Rating < 1 || reqData.Rating > 5 {
		reqData.Rating = 5
	}

	testimonial := models.Testimonial{
		UserID:  userID,
		Content: strings.TrimSpace(reqData.Content),
		Rating:  reqData.Rating,
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial submitted for review!", testimonial)
}

// SubmitContactForm stores a contact message and relays it to the admin inbox
func SubmitContactForm(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	submission := models.ContactSubmission{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	go func() {
		if err := utils.SendContactNotification(submission.Name, submission.Email, submission.Subject, submission.Message); err != nil {
			log.Printf("Error relaying contact submission: %v", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent! We will get back to you soon.", submission)
}

// SubscribeNewsletter adds an email to the mailing list, once per email
func SubscribeNewsletter(c *fiber.Ctx) error {
	email, ok := c.Locals("newsletterEmail").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var existing models.NewsletterSubscription
	if err := database.Database.Db.Where("email = ?", email).First(&existing).Error; err == nil {
		if existing.IsSubscribed {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Already subscribed!", existing)
		}
		existing.IsSubscribed = true
		database.Database.Db.Save(&existing)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription renewed!", existing)
	}

	subscription := models.NewsletterSubscription{Email: email, IsSubscribed: true}
	if err := database.Database.Db.Create(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscribed to newsletter!", subscription)
}
