package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleMember = "MEMBER"
	RoleCoach  = "COACH"
	RoleAdmin  = "ADMIN"
)

type User struct {
	gorm.Model
	FullName       string     `json:"full_name" gorm:"default:''"`
	Email          string     `json:"email" gorm:"unique;not null"`
	Password       string     `json:"-" gorm:"not null"`
	Role           string     `json:"role" gorm:"default:'MEMBER'"` // MEMBER, COACH, ADMIN
	Bio            string     `json:"bio" gorm:"type:text"`
	Specialization string     `json:"specialization"` // For coaches
	ProfileImage   string     `json:"profile_image" gorm:"default:''"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	LastLogin      *time.Time `json:"last_login"`
	IsDeleted      bool       `json:"-" gorm:"default:false"`
}
