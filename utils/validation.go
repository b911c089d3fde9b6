// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateContact accepts either a phone number or an email address, since
// walk-in bookings are taken over both.
func ValidateContact(contact string) bool {
	if ValidatePhone(contact) {
		return true
	}
	regex := `^[^@\s]+@[^@\s]+\.[^@\s]+$`
	match, _ := regexp.MatchString(regex, strings.TrimSpace(contact))
	return match
}
