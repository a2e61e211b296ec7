package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Enrollment tracks a user's paid registration in a program. Progress is
// derived from the user's module progress records and never edited directly.
// Enrollments are never deleted, only cancelled.
type Enrollment struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	ProgramID     uint       `json:"program_id" gorm:"index;not null"`
	PaymentAmount float64    `json:"payment_amount" gorm:"default:0"`
	PaymentStatus string     `json:"payment_status" gorm:"default:'pending'"`
	Status        string     `json:"status" gorm:"default:'active'"` // active, completed, cancelled
	Progress      int        `json:"progress" gorm:"default:0"`      // Completion percentage (0-100)
	CheckoutRef   string     `json:"checkout_ref" gorm:"index"`      // Provider session/order id
	EnrolledAt    time.Time  `json:"enrolled_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	Program       *Program   `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
}

// Payment is the ledger row recorded when a checkout completes
type Payment struct {
	gorm.Model
	UserID       uint    `json:"user_id" gorm:"index;not null"`
	EnrollmentID uint    `json:"enrollment_id" gorm:"index;not null"`
	Amount       float64 `json:"amount" gorm:"not null"`
	Currency     string  `json:"currency" gorm:"default:'usd'"`
	Provider     string  `json:"provider"`
	ProviderRef  string  `json:"provider_ref" gorm:"index"`
	Status       string  `json:"status" gorm:"default:'paid'"`
}
