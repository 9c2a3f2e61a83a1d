package agenda

// RateLevel is the three-tier health classification shared by the
// confirmation and occupancy displays.
type RateLevel string

const (
	RateCritical RateLevel = "critical"
	RateWarning  RateLevel = "warning"
	RateHealthy  RateLevel = "healthy"
)

// ClassifyRate buckets a percentage into its display tier. Boundaries are
// exact: 60.0 is already warning, 80.0 is already healthy.
func ClassifyRate(rate float64) RateLevel {
	switch {
	case rate < 60:
		return RateCritical
	case rate < 80:
		return RateWarning
	default:
		return RateHealthy
	}
}

// ConfirmationRate is the percentage of booked slots that are confirmed.
// ok is false when the professional has no booked slots; the rate is then
// not computable rather than zero.
func (c StatusCounts) ConfirmationRate() (rate float64, ok bool) {
	booked := c.TotalBooked()
	if booked == 0 {
		return 0, false
	}
	return float64(c.Confirmed()) / float64(booked) * 100, true
}

// OccupancyRate is the percentage of all slots (free and blocked included)
// that carry a real booking.
func (c StatusCounts) OccupancyRate() (rate float64, ok bool) {
	total := c.TotalSlots()
	if total == 0 {
		return 0, false
	}
	return float64(c.TotalBooked()) / float64(total) * 100, true
}

// GlobalConfirmationRate aggregates the confirmation rate across every
// professional in the matrix.
func (m SummaryMatrix) GlobalConfirmationRate() (rate float64, ok bool) {
	booked, confirmed := 0, 0
	for _, counts := range m {
		booked += counts.TotalBooked()
		confirmed += counts.Confirmed()
	}
	if booked == 0 {
		return 0, false
	}
	return float64(confirmed) / float64(booked) * 100, true
}

// GlobalOccupancyRate aggregates the occupancy rate across every professional
// in the matrix.
func (m SummaryMatrix) GlobalOccupancyRate() (rate float64, ok bool) {
	total, booked := 0, 0
	for _, counts := range m {
		total += counts.TotalSlots()
		booked += counts.TotalBooked()
	}
	if total == 0 {
		return 0, false
	}
	return float64(booked) / float64(total) * 100, true
}
