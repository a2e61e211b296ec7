package utils

import (
	"log"
	"time"

	"reinvent/database"
	"reinvent/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// How long read notifications are kept before the cleanup job prunes them
const notificationRetentionDays = 30

// InitializeReminderScheduler sets up the daily coaching-session reminder and
// notification cleanup jobs
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	c := cron.New()

	// Run daily at 8 AM: remind tomorrow's coaching sessions
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily session reminder check...")
		SendSessionReminders()
	})

	// Run daily at 3 AM: prune old read notifications
	c.AddFunc("0 3 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running notification cleanup...")
		CleanupReadNotifications()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Reminder scheduler started - runs daily at 8 AM")
}

// SendSessionReminders notifies and emails every user with a session tomorrow
func SendSessionReminders() {
	db := database.Database.Db

	tomorrow := now.With(time.Now().AddDate(0, 0, 1))
	start := tomorrow.BeginningOfDay()
	end := tomorrow.EndOfDay()

	var sessions []models.CoachingSession
	if err := db.
		Where("session_datetime BETWEEN ? AND ?", start, end).
		Where("status IN ?", []string{models.SessionScheduled, models.SessionConfirmed}).
		Preload("Coach").
		Find(&sessions).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching tomorrow's sessions: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d sessions scheduled for tomorrow", len(sessions))

	for _, session := range sessions {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", session.UserID, false).First(&user).Error; err != nil {
			continue
		}

		coachName := "your coach"
		if session.Coach != nil {
			coachName = session.Coach.FullName
		}
		when := session.SessionDatetime.Format("Mon, Jan 2 at 3:04 PM")

		Notify(user.ID, models.NotificationCoachingSession,
			"Session Tomorrow",
			"Your coaching session with "+coachName+" is scheduled for "+when+".")

		var prefs models.NotificationPreference
		if err := db.Where("user_id = ?", user.ID).First(&prefs).Error; err == nil {
			if !prefs.EmailEnabled || !prefs.SessionReminders {
				continue
			}
		}
		if err := SendSessionReminder(user.FullName, user.Email, coachName, when); err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error emailing reminder to %s: %v", user.Email, err)
		}
	}
}

// CleanupReadNotifications deletes read notifications past the retention window
func CleanupReadNotifications() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -notificationRetentionDays)

	result := db.Unscoped().Where("is_read = ? AND read_at < ?", true, cutoff).Delete(&models.Notification{})
	if result.Error != nil {
		log.Printf("[REMINDER-SCHEDULER] Error pruning notifications: %v", result.Error)
		return
	}
	log.Printf("[REMINDER-SCHEDULER] Pruned %d read notifications", result.RowsAffected)
}
