package utils

import (
	"testing"
	"time"
)

func TestParseAppointmentDate(t *testing.T) {
	if _, err := ParseAppointmentDate("2026-09-14"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"14-09-2026", "2026-13-01", "tomorrow", ""} {
		if _, err := ParseAppointmentDate(bad); err == nil {
			t.Errorf("ParseAppointmentDate(%q) accepted", bad)
		}
	}
}

func TestParseAppointmentTime(t *testing.T) {
	if _, err := ParseAppointmentTime("09:30"); err != nil {
		t.Fatalf("valid time rejected: %v", err)
	}
	for _, bad := range []string{"9:30pm", "25:00", ""} {
		if _, err := ParseAppointmentTime(bad); err == nil {
			t.Errorf("ParseAppointmentTime(%q) accepted", bad)
		}
	}
}

func TestIsPastDate(t *testing.T) {
	if !IsPastDate(time.Now().AddDate(0, 0, -1)) {
		t.Error("yesterday should be past")
	}
	if IsPastDate(time.Now()) {
		t.Error("today is not past")
	}
	if IsPastDate(time.Now().AddDate(0, 0, 1)) {
		t.Error("tomorrow is not past")
	}
}
