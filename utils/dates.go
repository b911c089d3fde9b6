// utils/dates.go
package utils

import "time"

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseAppointmentDate validates an YYYY-MM-DD booking date.
func ParseAppointmentDate(s string) (time.Time, error) {
	return time.Parse(AppointmentDateLayout, s)
}

// ParseAppointmentTime validates an HH:MM booking time.
func ParseAppointmentTime(s string) (time.Time, error) {
	return time.Parse(AppointmentTimeLayout, s)
}

// IsPastDate reports whether the date falls before today.
func IsPastDate(d time.Time) bool {
	return BeginningOfDay(d).Before(BeginningOfDay(time.Now()))
}
