package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidMobile is returned for numbers that are not 10 to 15 digits
var ErrInvalidMobile = errors.New("invalid mobile number")

var mobilePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// NormalizeMobile strips separators and a leading "+" and validates the digit count
func NormalizeMobile(mobile string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "(", "", ")", "").Replace(strings.TrimSpace(mobile))
	stripped = strings.TrimPrefix(stripped, "+")

	if !mobilePattern.MatchString(stripped) {
		return "", ErrInvalidMobile
	}
	return stripped, nil
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
