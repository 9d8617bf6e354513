package utils

import (
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

// DigitsOnly strips everything but ASCII digits from a phone number
func DigitsOnly(phoneNumber string) string {
	var b strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhoneNumber accepts local and international formats with 7 to 15
// digits. Spaces, dashes, dots, brackets and a leading + are allowed.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := strings.TrimSpace(phoneNumber)
	cleaned = strings.TrimPrefix(cleaned, "+")

	digits := 0
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

// WhatsAppLink builds a wa.me chat link. It returns "" when the number has no
// digits.
func WhatsAppLink(phoneNumber string) string {
	digits := DigitsOnly(phoneNumber)
	if digits == "" {
		return ""
	}
	return whatsAppBaseURL + digits
}
