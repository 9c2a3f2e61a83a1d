package amei

// Professional is one row of the unit's professional directory.
type Professional struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// RawSlot is one appointment-calendar cell exactly as the slots endpoint
// returns it. Every field may be absent; normalization fills defaults.
type RawSlot struct {
	FormattedHour string  `json:"formatedHour"`
	Status        string  `json:"status"`
	Patient       *string `json:"patient"`
	Hour          float64 `json:"hour"`
}

// slotsEnvelope wraps the single-element list the slots endpoint responds with.
type slotsEnvelope struct {
	Hours []RawSlot `json:"hours"`
}

// AppointmentItem is one confirmable appointment from the paginated listing.
type AppointmentItem struct {
	StartsAt         string  `json:"dataHoraInicio"`
	PatientName      string  `json:"pacienteNome"`
	ProfessionalName string  `json:"profissionalNome"`
	PatientPhone     *string `json:"pacienteCelular"`
}

// PageMeta carries the listing's pagination metadata.
type PageMeta struct {
	TotalPages int `json:"totalPages"`
}

// ConfirmablePage is one page of the confirmable-appointment listing.
// Meta is nil when the API omits it; callers treat that as a single page.
type ConfirmablePage struct {
	Items []AppointmentItem `json:"items"`
	Meta  *PageMeta         `json:"meta"`
}
