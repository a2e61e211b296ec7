package enrollmentController

import (
	"log"
	"time"

	"reinvent/config"
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCheckout creates a pending enrollment and hands the browser off to
// the payment provider's hosted checkout page
func CreateCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	programID := c.Locals("programID").(int)

	var program models.Program
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", programID, true, false).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	// Check for an existing paid enrollment
	var existing models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND program_id = ? AND payment_status = ? AND status <> ?",
			userID, program.ID, models.PaymentPaid, models.EnrollmentCancelled).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this program!", nil)
	}

	enrollment := models.Enrollment{
		UserID:        userID,
		ProgramID:     program.ID,
		PaymentAmount: program.Price,
		PaymentStatus: models.PaymentPending,
		Status:        models.EnrollmentActive,
		EnrolledAt:    time.Now(),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}
	tx.Commit()

	session, err := utils.CreateCheckoutSession(program, user)
	if err != nil {
		// Surface the provider's message verbatim
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, err.Error(), nil)
	}

	enrollment.CheckoutRef = session.Reference
	database.Database.Db.Save(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{
		"checkout_url":  session.CheckoutURL,
		"reference":     session.Reference,
		"enrollment_id": enrollment.ID,
	})
}

// ConfirmPayment finalizes an enrollment once the provider reports the
// checkout as paid. Called by the provider webhook or the return-page poll.
func ConfirmPayment(c *fiber.Ctx) error {
	reqData := new(struct {
		Reference string `json:"reference"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Reference == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Checkout reference is required!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("checkout_ref = ?", reqData.Reference).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	// Confirming twice is a no-op
	if enrollment.PaymentStatus == models.PaymentPaid {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already confirmed!", enrollment)
	}

	enrollment.PaymentStatus = models.PaymentPaid

	payment := models.Payment{
		UserID:       enrollment.UserID,
		EnrollmentID: enrollment.ID,
		Amount:       enrollment.PaymentAmount,
		Provider:     config.AppConfig.PaymentProvider,
		ProviderRef:  reqData.Reference,
		Status:       models.PaymentPaid,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}
	tx.Commit()

	var user models.User
	var program models.Program
	if err := database.Database.Db.First(&user, enrollment.UserID).Error; err == nil {
		if err := database.Database.Db.First(&program, enrollment.ProgramID).Error; err == nil {
			utils.Notify(user.ID, models.NotificationCourseProgress,
				"Enrollment Confirmed",
				"You are enrolled in "+program.Name+". Your first module is waiting.")
			go func() {
				if err := utils.SendEnrollmentConfirmation(user.FullName, user.Email, program.Name); err != nil {
					log.Printf("Error sending enrollment confirmation: %v", err)
				}
			}()
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed!", enrollment)
}

// GetEnrollments lists the authenticated user's enrollments with programs
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Program").
		Order("enrolled_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// GetEnrollment returns one enrollment with its program and modules, for the
// course player
func GetEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND user_id = ?", enrollmentID, userID).
		Preload("Program").
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Program != nil {
		var modules []models.ProgramModule
		database.Database.Db.
			Where("program_id = ? AND is_deleted = ?", enrollment.ProgramID, false).
			Order("order_index asc").
			Find(&modules)
		enrollment.Program.Modules = modules
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// CancelEnrollment soft-cancels an enrollment; the row is never deleted
func CancelEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ? AND user_id = ?", enrollmentID, userID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Status == models.EnrollmentCancelled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment already cancelled!", enrollment)
	}

	enrollment.Status = models.EnrollmentCancelled
	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled!", enrollment)
}
