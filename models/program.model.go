package models

import "gorm.io/gorm"

// Program is a leadership-training program users can enroll in
type Program struct {
	gorm.Model
	Name             string          `json:"name" gorm:"not null"`
	Slug             string          `json:"slug" gorm:"uniqueIndex;not null"`
	Description      string          `json:"description" gorm:"type:text"`
	Price            float64         `json:"price" gorm:"default:0"` // USD
	DurationWeeks    int             `json:"duration_weeks" gorm:"default:0"`
	FeaturedImageURL string          `json:"featured_image_url"`
	DisplayOrder     int             `json:"display_order" gorm:"default:0"`
	IsActive         bool            `json:"is_active" gorm:"default:true"`
	IsDeleted        bool            `json:"-" gorm:"default:false"`
	Modules          []ProgramModule `json:"modules,omitempty" gorm:"foreignKey:ProgramID"`
}

// ProgramModule is one unit of a program's curriculum. Each module carries a
// video, a reading and an assignment section.
type ProgramModule struct {
	gorm.Model
	ProgramID            uint   `json:"program_id" gorm:"index;not null"`
	Title                string `json:"title"`
	Description          string `json:"description" gorm:"type:text"`
	OrderIndex           int    `json:"order_index" gorm:"default:0"` // Module order in program
	VideoURL             string `json:"video_url"`
	VideoDurationSeconds int    `json:"video_duration_seconds" gorm:"default:0"`
	ReadingContent       string `json:"reading_content" gorm:"type:text"`
	AssignmentPrompt     string `json:"assignment_prompt" gorm:"type:text"`
	IsDeleted            bool   `json:"-" gorm:"default:false"`
}
