package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlotsFullDay(t *testing.T) {
	slots := GenerateSlots(map[string]bool{})

	assert.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "9:00 AM", slots[0].DisplayTime)
	assert.Equal(t, "12:00", slots[3].Time)
	assert.Equal(t, "12:00 PM", slots[3].DisplayTime)
	assert.Equal(t, "17:00", slots[8].Time)
	assert.Equal(t, "5:00 PM", slots[8].DisplayTime)
}

func TestGenerateSlotsSkipsTaken(t *testing.T) {
	slots := GenerateSlots(map[string]bool{"11:00": true, "14:00": true})

	assert.Len(t, slots, 7)
	for _, s := range slots {
		assert.NotEqual(t, "11:00", s.Time)
		assert.NotEqual(t, "14:00", s.Time)
	}
}

func TestSlotAvailable(t *testing.T) {
	slots := GenerateSlots(map[string]bool{"11:00": true})

	assert.True(t, SlotAvailable(slots, "09:00"))
	assert.False(t, SlotAvailable(slots, "11:00"))
	assert.False(t, SlotAvailable(slots, "08:00"))
	assert.False(t, SlotAvailable(slots, "18:00"))
}
