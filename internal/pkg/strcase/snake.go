package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts s to snake_case while keeping initialisms readable,
// so "patientID" becomes "patient_id" and "SMSCode" becomes "sms_code".
func ToLowerSnake(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(runes) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// Boundary either when leaving a lowercase/digit run, or when an
			// acronym run ends and a new word starts.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				b.WriteRune('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
