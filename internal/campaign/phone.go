package campaign

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone prepares a raw phone value for the messaging API: all
// non-digit characters are stripped and numbers of up to 11 digits (local
// DDD + subscriber) get the Brazilian country code prefixed. Longer values
// are assumed to already carry a country code and pass through unchanged.
// An empty or digit-free value yields "" and the record is not sendable.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	if len(digits) <= 11 {
		return "55" + digits
	}
	return digits
}
