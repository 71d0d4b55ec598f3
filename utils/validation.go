// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// NormalizePhone strips spacing and punctuation from a phone number so the
// same customer always matches one record regardless of how the number was
// typed.
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	return strings.ReplaceAll(cleaned, ")", "")
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, NormalizePhone(phone))
	return match
}

// NormalizePlate uppercases a vehicle plate and strips spacing so the same
// vehicle is never stored twice under different formatting.
func NormalizePlate(plate string) string {
	cleaned := strings.ReplaceAll(plate, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return strings.ToUpper(cleaned)
}

// ValidatePlate checks a vehicle plate: 3 to 10 alphanumeric characters
// after normalization.
func ValidatePlate(plate string) bool {
	cleaned := NormalizePlate(plate)
	match, _ := regexp.MatchString(`^[A-Z0-9]{3,10}$`, cleaned)
	return match
}
