package models

import "gorm.io/gorm"

// Prayer request categories
var PrayerCategories = []string{"general", "health", "family", "work", "ministry", "guidance"}

// IsValidPrayerCategory reports whether a category is one of the known set
func IsValidPrayerCategory(category string) bool {
	for _, c := range PrayerCategories {
		if c == category {
			return true
		}
	}
	return false
}

// PrayerRequest is a prayer-wall entry. Anonymous requests keep their author
// id for ownership checks but never expose a name. Requests are deactivated,
// not deleted.
type PrayerRequest struct {
	gorm.Model
	UserID      uint              `json:"user_id" gorm:"index;not null"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description" gorm:"type:text"`
	Category    string            `json:"category" gorm:"default:'general'"`
	IsAnonymous bool              `json:"is_anonymous" gorm:"default:false"`
	IsActive    bool              `json:"is_active" gorm:"default:true"`
	AuthorName  string            `json:"author_name" gorm:"-"`
	Responses   []PrayerResponse  `json:"responses,omitempty" gorm:"foreignKey:PrayerRequestID"`
	Supporters  []PrayerSupporter `json:"supporters,omitempty" gorm:"foreignKey:PrayerRequestID"`
}

// PrayerResponse is one reply on a prayer request, ordered by creation time.
// A user may respond any number of times.
type PrayerResponse struct {
	gorm.Model
	PrayerRequestID uint   `json:"prayer_request_id" gorm:"index;not null"`
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	Content         string `json:"content" gorm:"type:text;not null"`
	AuthorName      string `json:"author_name" gorm:"-"`
}

// PrayerSupporter marks that a user is praying for a request. The unique
// index keeps a user from appearing in the supporter set more than once.
type PrayerSupporter struct {
	gorm.Model
	PrayerRequestID uint `json:"prayer_request_id" gorm:"index:idx_request_supporter,unique;not null"`
	UserID          uint `json:"user_id" gorm:"index:idx_request_supporter,unique;not null"`
}

// HasSupporter reports whether a user is in a request's supporter set
func HasSupporter(supporters []PrayerSupporter, userID uint) bool {
	for _, s := range supporters {
		if s.UserID == userID {
			return true
		}
	}
	return false
}
