package agenda

import (
	"sort"

	"github.com/clinicwave/agenda-ops/internal/amei"
)

// Slot is one canonical appointment-calendar cell for a professional.
type Slot struct {
	Time    string  `json:"time"`
	Status  Status  `json:"status"`
	Patient *string `json:"patient,omitempty"`
	SortKey float64 `json:"-"`
}

// NormalizeSlot maps a raw API slot into its canonical shape. Malformed input
// degrades to defaults; a slot never fails normalization. The patient pointer
// is preserved as-is because presence drives the card's secondary line.
func NormalizeSlot(raw amei.RawSlot) Slot {
	timeLabel := raw.FormattedHour
	if timeLabel == "" {
		timeLabel = "N/A"
	}
	status := Status(raw.Status)
	if status == "" {
		status = StatusUndefined
	}
	return Slot{
		Time:    timeLabel,
		Status:  status,
		Patient: raw.Patient,
		SortKey: raw.Hour,
	}
}

// SortSlots orders slots ascending by their numeric hour. The sort is stable:
// slots sharing an hour keep the order the API returned them in.
func SortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].SortKey < slots[j].SortKey
	})
}
