package billing

import "time"

// ReminderLeadDays is how long before a due date the advance reminder goes out.
const ReminderLeadDays = 3

// DateOnly maps t to midnight UTC of its calendar date in loc.
// All lease and bill dates are stored in this form.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves t forward by n calendar months keeping the day of month,
// clamped to the last day of the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// SendDate is the advance reminder date for a cycle due on due.
func SendDate(due time.Time) time.Time {
	return due.AddDate(0, 0, -ReminderLeadDays)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
