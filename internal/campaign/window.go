package campaign

import "time"

// Window computes the confirmation lookahead window for a campaign run.
// The window always starts tomorrow. On Thursdays and Fridays it spans four
// days instead of three so reminders sent before the weekend still cover
// Monday's appointments.
func Window(today time.Time) (start, end time.Time) {
	start = today.AddDate(0, 0, 1)
	if wd := today.Weekday(); wd == time.Thursday || wd == time.Friday {
		end = today.AddDate(0, 0, 4)
	} else {
		end = today.AddDate(0, 0, 3)
	}
	return start, end
}
