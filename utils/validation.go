package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}

var postcodeRegex = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`)

// ValidatePostcode checks the rough shape of a UK postcode. The geocoder has
// the final say; this only rejects obvious garbage early.
func ValidatePostcode(postcode string) bool {
	return postcodeRegex.MatchString(strings.TrimSpace(postcode))
}
