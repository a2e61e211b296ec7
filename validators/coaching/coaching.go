package coachingValidator

import (
	"strconv"
	"strings"
	"time"

	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// AvailableSlots validates the coach ID parameter and ?date query for slot
// lookups
func AvailableSlots() fiber.Handler {
	return func(c *fiber.Ctx) error {
		coachIDStr := strings.TrimSpace(c.Params("coach_id"))
		coachID, err := strconv.Atoi(coachIDStr)
		if err != nil || coachID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid coach ID!", nil)
		}

		dateStr := c.Query("date")
		if dateStr == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"date": "Date is required!"})
		}
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"date": "Date must be YYYY-MM-DD!"})
		}

		c.Locals("coachID", coachID)
		c.Locals("slotDate", date)
		return c.Next()
	}
}

// BookSession validates a booking payload
func BookSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CoachID         uint   `json:"coach_id"`
			Date            string `json:"date"`
			Time            string `json:"time"`
			DurationMinutes int    `json:"duration_minutes"`
			SessionType     string `json:"session_type"`
			Topic           string `json:"topic"`
			Notes           string `json:"notes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CoachID == 0 {
			errors["coach_id"] = "Coach is required!"
		}
		if reqData.Date == "" {
			errors["date"] = "Date is required!"
		}
		if reqData.Time == "" {
			errors["time"] = "Time is required!"
		}

		if reqData.DurationMinutes == 0 {
			reqData.DurationMinutes = 60
		}
		if reqData.DurationMinutes < 15 || reqData.DurationMinutes > 180 {
			errors["duration_minutes"] = "Duration must be between 15 and 180 minutes!"
		}

		if reqData.SessionType == "" {
			reqData.SessionType = models.SessionVideo
		}
		if !models.IsValidSessionType(reqData.SessionType) {
			errors["session_type"] = "Session type must be video, phone or in_person!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBooking", reqData)
		return c.Next()
	}
}

// UpdateStatus validates the session ID parameter and status payload
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case models.SessionScheduled, models.SessionConfirmed, models.SessionCompleted,
			models.SessionCancelled, models.SessionRescheduled:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Invalid session status!",
			})
		}

		c.Locals("sessionID", id)
		c.Locals("sessionStatus", reqData.Status)
		return c.Next()
	}
}
