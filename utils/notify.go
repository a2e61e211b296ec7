package utils

import (
	"log"

	"reinvent/database"
	"reinvent/models"
)

// Notify creates an inbox notification for a user. Used by the course,
// prayer, forum and coaching flows; a failed insert is logged and swallowed
// because a missing notification must never fail the triggering operation.
func Notify(userID uint, notificationType, title, message string) {
	notification := models.Notification{
		UserID:  userID,
		Type:    models.NormalizeNotificationType(notificationType),
		Title:   title,
		Message: message,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("[NOTIFY] Failed to create %s notification for user %d: %v", notificationType, userID, err)
	}
}
