package models

import "gorm.io/gorm"

// Testimonial is member feedback shown on marketing pages once approved
type Testimonial struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Content    string `json:"content" gorm:"type:text;not null"`
	Rating     int    `json:"rating" gorm:"default:5"`
	IsApproved bool   `json:"is_approved" gorm:"default:false"`
	IsFeatured bool   `json:"is_featured" gorm:"default:false"`
	AuthorName string `json:"author_name" gorm:"-"`
}

// ContactSubmission is a message sent through the contact form
type ContactSubmission struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text;not null"`
}

// NewsletterSubscription is a mailing-list signup, unique per email
type NewsletterSubscription struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	IsSubscribed bool   `json:"is_subscribed" gorm:"default:true"`
}
