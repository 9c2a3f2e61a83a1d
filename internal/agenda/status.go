package agenda

// Status is the booking state of a slot. The set is open: the clinic API
// introduces new labels without notice, so unknown values are carried through
// verbatim and still counted; only styling falls back to a default.
type Status string

// Known status labels as emitted by the clinic API.
const (
	StatusFree             Status = "Livre"
	StatusBlocked          Status = "Bloqueado"
	StatusAttended         Status = "Atendido"
	StatusAttendedFollowUp Status = "Atendido pós-consulta"
	StatusConfirmed        Status = "Marcado - confirmado"
	StatusInProgress       Status = "Em atendimento"
	StatusNoShow           Status = "Não compareceu"
	StatusScheduled        Status = "Agendado"
	StatusFitIn            Status = "Encaixe"
	StatusWaiting          Status = "Aguardando atendimento"
	StatusWaitingFollowUp  Status = "Aguardando pós-consulta"
	StatusNoShowFollowUp   Status = "Não compareceu pós-consulta"
	StatusUndefined        Status = "Indefinido"
)

// statusStyles maps each known status to the inline style the display layer
// renders slot cards with.
var statusStyles = map[Status]string{
	StatusFree:             "background-color: #E3F2FD; border: 1px solid #90CAF9; color: #1565C0;",
	StatusBlocked:          "background-color: #bfbfbf; border: 1px solid #7d7d7d; color: #7d7d7d;",
	StatusAttended:         "background-color: #7ff57f; border: 1px solid #1b8c0a; color: #1b8c0a;",
	StatusAttendedFollowUp: "background-color: #73ff7a; border: 1px solid #1b8c0a; color: #1b8c0a;",
	StatusConfirmed:        "background-color: #96f2ef; border: 1px solid #1565C0; color: #1565C0;",
	StatusInProgress:       "background-color: #FFFDE7; border: 1px solid #FBC02D; color: #F57F17;",
	StatusNoShow:           "background-color: #fa7d90; border: 1px solid #E57373; color: #C62828;",
	StatusScheduled:        "background-color: #f5d5a6; border: 1px solid #E57373; color: #C62828;",
	StatusFitIn:            "background-color: #a88ef5; border: 1px solid #7649fc; color: #7649fc;",
	StatusWaiting:          "background-color: #ffe770; border: 1px solid #a89a1d; color: #a89a1d;",
	StatusWaitingFollowUp:  "background-color: #c2ffd4; border: 1px solid #07ab38; color: #07ab38;",
	StatusNoShowFollowUp:   "background-color: #c2ffd4; border: 1px solid #07ab38; color: #07ab38;",
}

const defaultStyle = "background-color: #FAFAFA; border: 1px solid #E0E0E0; color: #757575;"

// Style returns the display style for the status, falling back to a neutral
// default for labels that are not in the known set.
func (s Status) Style() string {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return defaultStyle
}

// CountsAsBooked reports whether the status represents a real booking.
// Free and blocked slots are excluded from Total Agendado.
func (s Status) CountsAsBooked() bool {
	return s != StatusFree && s != StatusBlocked
}
