package agenda

// StatusCounts tallies how many slots a professional has per status. Keys are
// an open set; any label the API emits becomes a row.
type StatusCounts map[Status]int

// Add increments the counter for the given status.
func (c StatusCounts) Add(s Status) {
	c[s]++
}

// TotalBooked is the "Total Agendado" column: the sum of all status counts
// excluding free and blocked slots.
func (c StatusCounts) TotalBooked() int {
	total := 0
	for status, n := range c {
		if status.CountsAsBooked() {
			total += n
		}
	}
	return total
}

// TotalSlots is the sum of every status count, free and blocked included.
func (c StatusCounts) TotalSlots() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Confirmed returns the count of slots with the confirmed status.
func (c StatusCounts) Confirmed() int {
	return c[StatusConfirmed]
}

// SummaryMatrix maps professional name to that professional's status counts.
type SummaryMatrix map[string]StatusCounts

// Statuses returns the union of status labels present in the matrix. Order is
// unspecified; the display layer sorts for rendering.
func (m SummaryMatrix) Statuses() []Status {
	seen := map[Status]struct{}{}
	var out []Status
	for _, counts := range m {
		for status := range counts {
			if _, ok := seen[status]; ok {
				continue
			}
			seen[status] = struct{}{}
			out = append(out, status)
		}
	}
	return out
}
