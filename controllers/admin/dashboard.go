package adminController

import (
	"time"

	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats aggregates the numbers shown on the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db
	monthStart := now.BeginningOfMonth()

	var totalUsers, newUsersThisMonth int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND created_at >= ?", false, monthStart).Count(&newUsersThisMonth)

	var activeEnrollments, newEnrollmentsThisMonth int64
	db.Model(&models.Enrollment{}).
		Where("status = ? AND payment_status = ?", models.EnrollmentActive, models.PaymentPaid).
		Count(&activeEnrollments)
	db.Model(&models.Enrollment{}).
		Where("payment_status = ? AND enrolled_at >= ?", models.PaymentPaid, monthStart).
		Count(&newEnrollmentsThisMonth)

	var monthlyRevenue float64
	db.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ?", models.PaymentPaid, monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&monthlyRevenue)

	var completedEnrollments, countableEnrollments int64
	db.Model(&models.Enrollment{}).
		Where("status = ?", models.EnrollmentCompleted).
		Count(&completedEnrollments)
	db.Model(&models.Enrollment{}).
		Where("status <> ? AND payment_status = ?", models.EnrollmentCancelled, models.PaymentPaid).
		Count(&countableEnrollments)

	completionRate := 0
	if countableEnrollments > 0 {
		completionRate = int(completedEnrollments * 100 / countableEnrollments)
	}

	var upcomingSessions int64
	db.Model(&models.CoachingSession{}).
		Where("session_datetime >= ? AND status IN ?", time.Now(), []string{models.SessionScheduled, models.SessionConfirmed}).
		Count(&upcomingSessions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":                totalUsers,
		"new_users_this_month":       newUsersThisMonth,
		"active_enrollments":         activeEnrollments,
		"new_enrollments_this_month": newEnrollmentsThisMonth,
		"monthly_revenue_cents":      int64(monthlyRevenue * 100),
		"completion_rate":            completionRate,
		"upcoming_sessions":          upcomingSessions,
	})
}

// GetUsers lists all users with their enrollment counts
func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	type userWithCount struct {
		models.User
		EnrollmentCount int64 `json:"enrollment_count"`
	}

	result := make([]userWithCount, len(users))
	for i, user := range users {
		user.Password = ""
		var count int64
		database.Database.Db.Model(&models.Enrollment{}).
			Where("user_id = ?", user.ID).
			Count(&count)
		result[i] = userWithCount{User: user, EnrollmentCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", result)
}

// UpdateUserRole changes a user's role (member, coach, admin)
func UpdateUserRole(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)
	role := c.Locals("targetRole").(string)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = role
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated!", user)
}

// ToggleUserStatus activates or deactivates a user account
func ToggleUserStatus(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsActive = !user.IsActive
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated!", user)
}

// GetPayments lists payments newest first
func GetPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.Database.Db.
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}

// ApproveTestimonial approves (and optionally features) a testimonial
func ApproveTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("testimonialID").(int)

	reqData := new(struct {
		IsFeatured bool `json:"is_featured"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var testimonial models.Testimonial
	if err := database.Database.Db.Where("id = ?", testimonialID).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	testimonial.IsApproved = true
	testimonial.IsFeatured = reqData.IsFeatured
	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial approved!", testimonial)
}
