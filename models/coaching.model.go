package models

import (
	"time"

	"gorm.io/gorm"
)

// Coaching session types
const (
	SessionVideo    = "video"
	SessionPhone    = "phone"
	SessionInPerson = "in_person"
)

// Coaching session statuses
const (
	SessionScheduled   = "scheduled"
	SessionConfirmed   = "confirmed"
	SessionCompleted   = "completed"
	SessionCancelled   = "cancelled"
	SessionRescheduled = "rescheduled"
)

// IsValidSessionType reports whether a session type is one of the known set
func IsValidSessionType(t string) bool {
	return t == SessionVideo || t == SessionPhone || t == SessionInPerson
}

// CoachingSession is a booked one-on-one session between a member and a coach.
// Sessions are cancelled via status, never deleted.
type CoachingSession struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	CoachID         uint      `json:"coach_id" gorm:"index;not null"`
	SessionDatetime time.Time `json:"session_datetime" gorm:"index;not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:60"`
	SessionType     string    `json:"session_type" gorm:"default:'video'"` // video, phone, in_person
	Status          string    `json:"status" gorm:"default:'scheduled'"`
	Topic           string    `json:"topic"`
	Notes           string    `json:"notes" gorm:"type:text"`
	Coach           *User     `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
}
