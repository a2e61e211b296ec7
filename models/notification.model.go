package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification types. Unrecognized types fall back to NotificationSystem so a
// newer producer never breaks an older reader.
const (
	NotificationCourseProgress  = "course_progress"
	NotificationCoachingSession = "coaching_session"
	NotificationForumReply      = "forum_reply"
	NotificationPrayerResponse  = "prayer_response"
	NotificationAchievement     = "achievement"
	NotificationCommunity       = "community"
	NotificationSystem          = "system"
)

var knownNotificationTypes = []string{
	NotificationCourseProgress,
	NotificationCoachingSession,
	NotificationForumReply,
	NotificationPrayerResponse,
	NotificationAchievement,
	NotificationCommunity,
	NotificationSystem,
}

// NormalizeNotificationType maps any type string onto the closed known set
func NormalizeNotificationType(t string) string {
	for _, known := range knownNotificationTypes {
		if t == known {
			return t
		}
	}
	return NotificationSystem
}

// Notification filter predicates
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterRead   = "read"
)

// Notification is one inbox entry. ReadAt is non-nil iff IsRead is true.
type Notification struct {
	gorm.Model
	UserID  uint       `json:"user_id" gorm:"index;not null"`
	Type    string     `json:"type" gorm:"default:'system'"`
	Title   string     `json:"title"`
	Message string     `json:"message" gorm:"type:text"`
	IsRead  bool       `json:"is_read" gorm:"default:false"`
	ReadAt  *time.Time `json:"read_at"`
}

// MarkRead flips the notification to read, setting ReadAt once. Returns true
// only when the notification was previously unread, so callers can adjust the
// unread count without it drifting below zero.
func (n *Notification) MarkRead(at time.Time) bool {
	if n.IsRead {
		return false
	}
	n.IsRead = true
	readAt := at
	n.ReadAt = &readAt
	return true
}

// FilterNotifications returns notifications matching the predicate, keeping
// the input order (newest first as fetched). An unknown predicate behaves
// like "all".
func FilterNotifications(notifications []Notification, predicate string) []Notification {
	filtered := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		switch predicate {
		case FilterUnread:
			if n.IsRead {
				continue
			}
		case FilterRead:
			if !n.IsRead {
				continue
			}
		}
		filtered = append(filtered, n)
	}
	return filtered
}

// CountUnread derives the unread count from the collection itself
func CountUnread(notifications []Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// NotificationPreference stores a user's delivery preferences. Defaults live
// in DefaultNotificationPreference, not in column defaults, so an explicit
// false on first save is never overridden.
type NotificationPreference struct {
	gorm.Model
	UserID           uint `json:"user_id" gorm:"uniqueIndex;not null"`
	EmailEnabled     bool `json:"email_enabled"`
	CourseUpdates    bool `json:"course_updates"`
	CommunityUpdates bool `json:"community_updates"`
	PrayerUpdates    bool `json:"prayer_updates"`
	SessionReminders bool `json:"session_reminders"`
}

// DefaultNotificationPreference is the preference set every user starts with
func DefaultNotificationPreference(userID uint) NotificationPreference {
	return NotificationPreference{
		UserID:           userID,
		EmailEnabled:     true,
		CourseUpdates:    true,
		CommunityUpdates: true,
		PrayerUpdates:    true,
		SessionReminders: true,
	}
}
