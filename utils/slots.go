package utils

import "fmt"

// Coaching slots run hourly from 09:00 through 17:00
const (
	firstSlotHour = 9
	lastSlotHour  = 17
)

// Slot is one bookable coaching time on a given date
type Slot struct {
	Time        string `json:"time"`         // 24h "HH:00"
	DisplayTime string `json:"display_time"` // "9:00 AM"
}

// GenerateSlots builds the day's slot list, skipping any times already taken
func GenerateSlots(taken map[string]bool) []Slot {
	slots := make([]Slot, 0, lastSlotHour-firstSlotHour+1)
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		t := fmt.Sprintf("%02d:00", hour)
		if taken[t] {
			continue
		}
		displayHour := hour
		meridiem := "AM"
		if hour >= 12 {
			meridiem = "PM"
			if hour > 12 {
				displayHour = hour - 12
			}
		}
		slots = append(slots, Slot{
			Time:        t,
			DisplayTime: fmt.Sprintf("%d:00 %s", displayHour, meridiem),
		})
	}
	return slots
}

// SlotAvailable reports whether the requested time is in the advertised slot
// set. This is a point-in-time check only: two requests racing for the same
// slot are resolved by whichever insert lands first, not here.
func SlotAvailable(slots []Slot, requested string) bool {
	for _, s := range slots {
		if s.Time == requested {
			return true
		}
	}
	return false
}
