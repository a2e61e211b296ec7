package coachingController

import (
	"log"
	"time"

	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetCoaches lists active coaches with their session counts
func GetCoaches(c *fiber.Ctx) error {
	var coaches []models.User
	if err := database.Database.Db.
		Where("role = ? AND is_active = ? AND is_deleted = ?", models.RoleCoach, true, false).
		Find(&coaches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coaches!", nil)
	}

	type coachWithCount struct {
		models.User
		SessionCount int64 `json:"session_count"`
	}

	result := make([]coachWithCount, len(coaches))
	for i, coach := range coaches {
		coach.Password = ""
		var count int64
		database.Database.Db.Model(&models.CoachingSession{}).
			Where("coach_id = ?", coach.ID).
			Count(&count)
		result[i] = coachWithCount{User: coach, SessionCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coaches fetched successfully!", result)
}

// takenSlotTimes collects the slot times already booked for a coach on a date
func takenSlotTimes(coachID uint, date time.Time) map[string]bool {
	day := now.With(date)

	var sessions []models.CoachingSession
	database.Database.Db.
		Where("coach_id = ? AND session_datetime BETWEEN ? AND ?", coachID, day.BeginningOfDay(), day.EndOfDay()).
		Where("status <> ?", models.SessionCancelled).
		Find(&sessions)

	taken := make(map[string]bool, len(sessions))
	for _, session := range sessions {
		taken[session.SessionDatetime.Format("15:04")] = true
	}
	return taken
}

// GetAvailableSlots returns the open hourly slots for a coach on a date
func GetAvailableSlots(c *fiber.Ctx) error {
	coachID := c.Locals("coachID").(int)
	date := c.Locals("slotDate").(time.Time)

	var coach models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_active = ? AND is_deleted = ?", coachID, models.RoleCoach, true, false).
		First(&coach).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
	}

	slots := utils.GenerateSlots(takenSlotTimes(coach.ID, date))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Available slots fetched successfully!", slots)
}

// BookSession books a coaching session. The requested time must be one of
// the coach's advertised open slots for that date; this is a best-effort
// check against the slot list at booking time, not a transactional hold.
func BookSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedBooking").(*struct {
		CoachID         uint   `json:"coach_id"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		DurationMinutes int    `json:"duration_minutes"`
		SessionType     string `json:"session_type"`
		Topic           string `json:"topic"`
		Notes           string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var coach models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_active = ? AND is_deleted = ?", reqData.CoachID, models.RoleCoach, true, false).
		First(&coach).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
	}

	date, err := time.ParseInLocation("2006-01-02", reqData.Date, time.Local)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date format, expected YYYY-MM-DD!", nil)
	}

	slots := utils.GenerateSlots(takenSlotTimes(coach.ID, date))
	if !utils.SlotAvailable(slots, reqData.Time) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Requested time slot is not available!", nil)
	}

	sessionTime, err := time.ParseInLocation("2006-01-02 15:04", reqData.Date+" "+reqData.Time, time.Local)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid time format, expected HH:MM!", nil)
	}

	session := models.CoachingSession{
		UserID:          userID,
		CoachID:         coach.ID,
		SessionDatetime: sessionTime,
		DurationMinutes: reqData.DurationMinutes,
		SessionType:     reqData.SessionType,
		Status:          models.SessionScheduled,
		Topic:           reqData.Topic,
		Notes:           reqData.Notes,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to book session!", nil)
	}

	when := sessionTime.Format("Mon, Jan 2 at 3:04 PM")
	utils.Notify(userID, models.NotificationCoachingSession,
		"Session Booked",
		"Your coaching session with "+coach.FullName+" is booked for "+when+".")
	go func() {
		if err := utils.SendBookingConfirmation(user.FullName, user.Email, coach.FullName, when); err != nil {
			log.Printf("Error sending booking confirmation: %v", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session booked successfully!", session)
}

// GetSessions lists the authenticated user's coaching sessions newest first
func GetSessions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sessions []models.CoachingSession
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Coach").
		Order("session_datetime desc").
		Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	for i := range sessions {
		if sessions[i].Coach != nil {
			sessions[i].Coach.Password = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

// UpdateSessionStatus moves a session through its lifecycle. The member who
// booked it may cancel; the coach may also confirm, complete or reschedule.
func UpdateSessionStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Locals("sessionID").(int)
	status := c.Locals("sessionStatus").(string)

	var session models.CoachingSession
	if err := database.Database.Db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	isOwner := session.UserID == userID
	isCoach := session.CoachID == userID
	if !isOwner && !isCoach {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not your session!", nil)
	}
	if isOwner && !isCoach && status != models.SessionCancelled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Members can only cancel their sessions!", nil)
	}

	session.Status = status
	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated!", session)
}
