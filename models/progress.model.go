package models

import (
	"encoding/json"
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Module sections a user must finish before the module counts as completed
const (
	SectionVideo      = "video"
	SectionReading    = "reading"
	SectionAssignment = "assignment"
)

// RequiredSections lists every section of a module, in display order
var RequiredSections = []string{SectionVideo, SectionReading, SectionAssignment}

// VideoSaveInterval throttles video-position writes: the position is only
// persisted when the floored playback second is a multiple of this.
const VideoSaveInterval = 30

// UserModuleProgress is one user's progress through one program module.
// CompletedSections holds a JSON array of section names; CompletedAt is set
// exactly once, when the section set reaches all of RequiredSections.
type UserModuleProgress struct {
	gorm.Model
	UserID               uint           `json:"user_id" gorm:"index:idx_user_module,unique;not null"`
	ModuleID             uint           `json:"module_id" gorm:"index:idx_user_module,unique;not null"`
	VideoPositionSeconds float64        `json:"video_progress_seconds" gorm:"default:0"`
	VideoDurationSeconds float64        `json:"video_duration_seconds" gorm:"default:0"`
	CompletedSections    datatypes.JSON `json:"completed_sections"`
	CompletedAt          *time.Time     `json:"completed_at"`
	LastAccessedAt       time.Time      `json:"last_accessed_at"`
}

// Sections decodes the completed-section array. A progress row written before
// any section was finished decodes to an empty slice.
func (p *UserModuleProgress) Sections() []string {
	var sections []string
	if len(p.CompletedSections) > 0 {
		_ = json.Unmarshal(p.CompletedSections, &sections)
	}
	return sections
}

// HasSection reports whether a section is already in the completed set
func (p *UserModuleProgress) HasSection(section string) bool {
	for _, s := range p.Sections() {
		if s == section {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the module has reached its terminal state
func (p *UserModuleProgress) IsCompleted() bool {
	return p.CompletedAt != nil
}

// MarkSection adds a section to the completed set (set union, so re-marking a
// section is a no-op). It returns true only on the call that transitions the
// module to completed; an already-completed module never re-fires and its
// CompletedAt is never rewritten.
func (p *UserModuleProgress) MarkSection(section string, at time.Time) bool {
	sections := p.Sections()
	for _, s := range sections {
		if s == section {
			return false
		}
	}
	sections = append(sections, section)

	raw, _ := json.Marshal(sections)
	p.CompletedSections = datatypes.JSON(raw)
	p.LastAccessedAt = at

	if p.CompletedAt != nil {
		return false
	}
	for _, required := range RequiredSections {
		found := false
		for _, s := range sections {
			if s == required {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	completedAt := at
	p.CompletedAt = &completedAt
	return true
}

// Percentage returns the module completion percentage, an integer in [0,100]
func (p *UserModuleProgress) Percentage() int {
	completed := 0
	for _, required := range RequiredSections {
		if p.HasSection(required) {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(RequiredSections)) * 100))
}

// ShouldPersistVideoPosition applies the write throttle for video playback
// updates. The in-memory position is always updated regardless.
func ShouldPersistVideoPosition(positionSeconds float64) bool {
	return int(math.Floor(positionSeconds))%VideoSaveInterval == 0
}

// EnrollmentPercentage is the mean of module percentages across a program's
// modules. A program with no modules is 0, not a division by zero.
func EnrollmentPercentage(moduleIDs []uint, progress map[uint]*UserModuleProgress) int {
	if len(moduleIDs) == 0 {
		return 0
	}
	total := 0
	for _, id := range moduleIDs {
		if p, ok := progress[id]; ok {
			total += p.Percentage()
		}
	}
	return int(math.Round(float64(total) / float64(len(moduleIDs))))
}
