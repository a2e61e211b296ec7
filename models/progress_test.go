package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkSectionPercentages(t *testing.T) {
	progress := &UserModuleProgress{UserID: 1, ModuleID: 1}
	at := time.Now()

	assert.Equal(t, 0, progress.Percentage())

	completed := progress.MarkSection(SectionVideo, at)
	assert.False(t, completed)
	assert.Equal(t, 33, progress.Percentage())

	completed = progress.MarkSection(SectionReading, at)
	assert.False(t, completed)
	assert.Equal(t, 67, progress.Percentage())

	completed = progress.MarkSection(SectionAssignment, at)
	assert.True(t, completed)
	assert.Equal(t, 100, progress.Percentage())
	assert.True(t, progress.IsCompleted())
}

func TestMarkSectionIdempotent(t *testing.T) {
	progress := &UserModuleProgress{UserID: 1, ModuleID: 1}
	at := time.Now()

	progress.MarkSection(SectionVideo, at)
	progress.MarkSection(SectionVideo, at)
	progress.MarkSection(SectionVideo, at)

	assert.Equal(t, []string{SectionVideo}, progress.Sections())
	assert.Equal(t, 33, progress.Percentage())
}

func TestCompletedAtSetOnce(t *testing.T) {
	progress := &UserModuleProgress{UserID: 1, ModuleID: 1}
	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	progress.MarkSection(SectionVideo, first)
	progress.MarkSection(SectionReading, first)
	completed := progress.MarkSection(SectionAssignment, first)
	assert.True(t, completed)
	assert.Equal(t, first, *progress.CompletedAt)

	// Re-marking after completion never re-fires or moves the timestamp
	later := first.Add(48 * time.Hour)
	completed = progress.MarkSection(SectionAssignment, later)
	assert.False(t, completed)
	assert.Equal(t, first, *progress.CompletedAt)
}

func TestShouldPersistVideoPosition(t *testing.T) {
	assert.True(t, ShouldPersistVideoPosition(0))
	assert.True(t, ShouldPersistVideoPosition(30))
	assert.True(t, ShouldPersistVideoPosition(60.7))
	assert.True(t, ShouldPersistVideoPosition(30.9))

	assert.False(t, ShouldPersistVideoPosition(29))
	assert.False(t, ShouldPersistVideoPosition(29.9))
	assert.False(t, ShouldPersistVideoPosition(31))
	assert.False(t, ShouldPersistVideoPosition(45.5))
}

func TestEnrollmentPercentage(t *testing.T) {
	at := time.Now()

	full := &UserModuleProgress{ModuleID: 1}
	full.MarkSection(SectionVideo, at)
	full.MarkSection(SectionReading, at)
	full.MarkSection(SectionAssignment, at)

	partial := &UserModuleProgress{ModuleID: 2}
	partial.MarkSection(SectionVideo, at)

	progress := map[uint]*UserModuleProgress{1: full, 2: partial}

	// (100 + 33 + 0) / 3 = 44
	assert.Equal(t, 44, EnrollmentPercentage([]uint{1, 2, 3}, progress))
	assert.Equal(t, 100, EnrollmentPercentage([]uint{1}, progress))
	assert.Equal(t, 0, EnrollmentPercentage([]uint{}, progress))
	assert.Equal(t, 0, EnrollmentPercentage([]uint{9}, progress))
}
