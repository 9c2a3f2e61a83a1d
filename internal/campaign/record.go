package campaign

import (
	"fmt"
	"time"

	"github.com/clinicwave/agenda-ops/internal/amei"
)

// Record is one flattened confirmable appointment, ready for export and
// message rendering. Phone holds the raw value from the API; normalization
// happens only for the send list so the export keeps the original number.
type Record struct {
	Date         string `json:"date"`
	Hour         string `json:"hour"`
	Name         string `json:"name"`
	Professional string `json:"professional"`
	Phone        string `json:"phone"`
}

// Accepted layouts for the listing's combined date-time field.
var startsAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Flatten maps raw appointment items to records. Both the date and the hour
// come from the single dataHoraInicio field. An unparseable timestamp aborts
// the whole batch: a partially flattened list could under-notify patients.
func Flatten(items []amei.AppointmentItem) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		startsAt, err := parseStartsAt(item.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("campaign: appointment for %q: %w", item.PatientName, err)
		}
		phone := ""
		if item.PatientPhone != nil {
			phone = *item.PatientPhone
		}
		records = append(records, Record{
			Date:         startsAt.Format("02/01/2006"),
			Hour:         startsAt.Format("15:04"),
			Name:         item.PatientName,
			Professional: item.ProfessionalName,
			Phone:        phone,
		})
	}
	return records, nil
}

func parseStartsAt(value string) (time.Time, error) {
	for _, layout := range startsAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable start time %q", value)
}
