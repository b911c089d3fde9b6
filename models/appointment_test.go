package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusConfirmed.Terminal() {
		t.Error("Pending/Confirmed must not be terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Error("Completed/Cancelled must be terminal")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if AppointmentStatus("Archived").Valid() {
		t.Error("unknown status should be invalid")
	}
}
