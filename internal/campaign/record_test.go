package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicwave/agenda-ops/internal/amei"
)

func TestFlatten(t *testing.T) {
	phone := "(32) 99999-9999"
	items := []amei.AppointmentItem{
		{
			StartsAt:         "2026-09-01T14:30:00",
			PatientName:      "Maria",
			ProfessionalName: "Dra. Ana",
			PatientPhone:     &phone,
		},
		{
			StartsAt:         "2026-09-02T08:00:00",
			PatientName:      "João",
			ProfessionalName: "Dr. Bruno",
			PatientPhone:     nil,
		},
	}

	records, err := Flatten(items)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Date:         "01/09/2026",
		Hour:         "14:30",
		Name:         "Maria",
		Professional: "Dra. Ana",
		Phone:        "(32) 99999-9999",
	}, records[0])

	// Missing phone flattens to empty; the record still exists for export.
	assert.Equal(t, "", records[1].Phone)
	assert.Equal(t, "02/09/2026", records[1].Date)
	assert.Equal(t, "08:00", records[1].Hour)
}

func TestFlattenAcceptsRFC3339(t *testing.T) {
	records, err := Flatten([]amei.AppointmentItem{
		{StartsAt: "2026-09-01T14:30:00-03:00", PatientName: "Maria"},
	})
	require.NoError(t, err)
	assert.Equal(t, "01/09/2026", records[0].Date)
	assert.Equal(t, "14:30", records[0].Hour)
}

func TestFlattenBadTimestampAbortsBatch(t *testing.T) {
	_, err := Flatten([]amei.AppointmentItem{
		{StartsAt: "2026-09-01T10:00:00", PatientName: "ok"},
		{StartsAt: "tomorrow-ish", PatientName: "broken"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
