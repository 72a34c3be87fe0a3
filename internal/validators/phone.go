package validators

import "strings"

// NormalizePhone strips separators and keeps a leading plus sign, so
// "+595 981 111-111" becomes "+595981111111".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	for i, r := range phone {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid accepts normalized numbers of a plausible length.
func IsPhoneValid(phone string) bool {
	normalized := NormalizePhone(phone)
	digits := strings.TrimPrefix(normalized, "+")
	return len(digits) >= 6 && len(digits) <= 15
}
