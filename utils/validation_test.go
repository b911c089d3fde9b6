package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+15550107788", "15550107788", "+44 20 7946 0958", "(555) 010-7788"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "abc", "+0123456", "+1 555 call-me"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = true, want false", p)
		}
	}
}

func TestValidateContact(t *testing.T) {
	valid := []string{"+15550107788", "guest@example.com", "  guest@example.com "}
	for _, c := range valid {
		if !ValidateContact(c) {
			t.Errorf("ValidateContact(%q) = false, want true", c)
		}
	}

	invalid := []string{"", "not an email", "guest@", "@example.com"}
	for _, c := range invalid {
		if ValidateContact(c) {
			t.Errorf("ValidateContact(%q) = true, want false", c)
		}
	}
}
