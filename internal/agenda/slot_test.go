package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinicwave/agenda-ops/internal/amei"
)

func TestNormalizeSlotDefaults(t *testing.T) {
	slot := NormalizeSlot(amei.RawSlot{})
	assert.Equal(t, "N/A", slot.Time)
	assert.Equal(t, StatusUndefined, slot.Status)
	assert.Nil(t, slot.Patient)
	assert.Equal(t, 0.0, slot.SortKey)
}

func TestNormalizeSlotFull(t *testing.T) {
	patient := "Maria Souza"
	slot := NormalizeSlot(amei.RawSlot{
		FormattedHour: "14:30",
		Status:        "Marcado - confirmado",
		Patient:       &patient,
		Hour:          14.5,
	})
	assert.Equal(t, "14:30", slot.Time)
	assert.Equal(t, StatusConfirmed, slot.Status)
	assert.Equal(t, &patient, slot.Patient)
	assert.Equal(t, 14.5, slot.SortKey)
}

func TestNormalizeSlotUnknownStatusPreserved(t *testing.T) {
	slot := NormalizeSlot(amei.RawSlot{Status: "Teleconsulta"})
	assert.Equal(t, Status("Teleconsulta"), slot.Status)
	assert.Equal(t, defaultStyle, slot.Status.Style())
}

func TestSortSlotsStable(t *testing.T) {
	first := "first"
	second := "second"
	slots := []Slot{
		{Time: "10:00", SortKey: 10},
		{Time: "08:00", SortKey: 8, Patient: &first},
		{Time: "08:00", SortKey: 8, Patient: &second},
		{Time: "07:30", SortKey: 7.5},
	}
	SortSlots(slots)

	assert.Equal(t, "07:30", slots[0].Time)
	// Ties keep input order.
	assert.Equal(t, &first, slots[1].Patient)
	assert.Equal(t, &second, slots[2].Patient)
	assert.Equal(t, "10:00", slots[3].Time)

	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t, slots[i-1].SortKey, slots[i].SortKey)
	}
}

func TestKnownStatusStyles(t *testing.T) {
	assert.NotEqual(t, defaultStyle, StatusFree.Style())
	assert.NotEqual(t, defaultStyle, StatusConfirmed.Style())
	assert.Equal(t, defaultStyle, StatusUndefined.Style())
}
