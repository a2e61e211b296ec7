package notificationController

import (
	"time"

	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// Inbox page size, newest first
const notificationPageSize = 50

// GetNotifications lists the user's notifications newest first, optionally
// filtered by ?filter=all|unread|read. The unread count is derived from the
// rows in the same call so it can never drift from the read flags.
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var notifications []models.Notification
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(notificationPageSize).
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	filter := c.Query("filter", models.FilterAll)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": models.FilterNotifications(notifications, filter),
		"unread_count":  models.CountUnread(notifications),
	})
}

// GetUnreadCount returns just the unread count, for badge polling
func GetUnreadCount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var count int64
	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch unread count!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unread count fetched successfully!", fiber.Map{
		"unread_count": count,
	})
}

// MarkRead marks one notification read. Marking an already-read notification
// again changes nothing.
func MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Locals("notificationID").(int)

	var notification models.Notification
	if err := database.Database.Db.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if notification.MarkRead(time.Now()) {
		if err := database.Database.Db.Save(&notification).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification as read!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notification)
}

// MarkAllRead marks every unread notification of the user read in one update
func MarkAllRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications as read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read!", fiber.Map{
		"unread_count": 0,
	})
}

// DeleteNotification removes a notification on explicit user action
func DeleteNotification(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Locals("notificationID").(int)

	var notification models.Notification
	if err := database.Database.Db.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete notification!", nil)
	}

	var count int64
	database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification deleted!", fiber.Map{
		"unread_count": count,
	})
}

// GetPreferences returns the user's notification delivery preferences
func GetPreferences(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var prefs models.NotificationPreference
	if err := database.Database.Db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		// Defaults for users created before preferences existed
		prefs = models.DefaultNotificationPreference(userID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences fetched successfully!", prefs)
}

// UpdatePreferences upserts the user's notification delivery preferences
func UpdatePreferences(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		EmailEnabled     *bool `json:"email_enabled"`
		CourseUpdates    *bool `json:"course_updates"`
		CommunityUpdates *bool `json:"community_updates"`
		PrayerUpdates    *bool `json:"prayer_updates"`
		SessionReminders *bool `json:"session_reminders"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var prefs models.NotificationPreference
	if err := database.Database.Db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		prefs = models.DefaultNotificationPreference(userID)
	}

	if reqData.EmailEnabled != nil {
		prefs.EmailEnabled = *reqData.EmailEnabled
	}
	if reqData.CourseUpdates != nil {
		prefs.CourseUpdates = *reqData.CourseUpdates
	}
	if reqData.CommunityUpdates != nil {
		prefs.CommunityUpdates = *reqData.CommunityUpdates
	}
	if reqData.PrayerUpdates != nil {
		prefs.PrayerUpdates = *reqData.PrayerUpdates
	}
	if reqData.SessionReminders != nil {
		prefs.SessionReminders = *reqData.SessionReminders
	}

	if err := database.Database.Db.Save(&prefs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update preferences!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences updated!", prefs)
}
