// Package backup implements the versioned member and transaction backup
// envelopes, including the row normalization applied on import: digit
// folding, phone splitting, date normalization and legacy category
// remapping. All imports produce the single canonical internal shape; legacy
// field variants never survive past this package.
package backup

import (
	"strings"
	"time"
	"unicode"
)

// toASCIIDigits folds Myanmar digits into ASCII so numeric fields from
// localized exports parse.
func toASCIIDigits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '၀' && r <= '၉' {
			b.WriteRune('0' + (r - '၀'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatDateDMY renders the canonical DD/MM/YYYY date text.
func formatDateDMY(t time.Time) string {
	return t.Format("02/01/2006")
}

// parseFlexibleDate accepts RFC3339 timestamps plus day-first and year-first
// dates with slash, dot or dash separators. Two-digit years are 2000-based.
func parseFlexibleDate(input string) (time.Time, bool) {
	raw := strings.TrimSpace(toASCIIDigits(input))
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}

	normalized := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return '/'
		}
		return r
	}, raw)

	parts := strings.Split(normalized, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	// Year-first when the leading field has four digits.
	var layout string
	if len(parts[0]) == 4 {
		layout = "2006/1/2"
	} else if len(parts[2]) == 2 {
		layout = "2/1/06"
	} else {
		layout = "2/1/2006"
	}

	t, err := time.Parse(layout, normalized)
	if err != nil {
		return time.Time{}, false
	}
	if t.Year() < 1900 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

// normalizeDateText rewrites recognizable dates as DD/MM/YYYY and leaves
// everything else untouched.
func normalizeDateText(input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ""
	}
	parsed, ok := parseFlexibleDate(raw)
	if !ok {
		return raw
	}
	return formatDateDMY(parsed)
}

// normalizeSinglePhone strips formatting and the country prefix from one
// phone token, restoring the leading zero local numbers carry.
func normalizeSinglePhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, toASCIIDigits(raw))
	if digits == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(digits, "0095"):
		digits = digits[4:]
	case strings.HasPrefix(digits, "95"):
		digits = digits[2:]
	}
	if strings.HasPrefix(digits, "9") {
		digits = "0" + digits
	}
	return digits
}

var phoneSeparators = strings.NewReplacer("၊", "/", "။", "/", "\\", "/", "|", "/", ",", "/", ";", "/", "\n", "/", "\r", "/")

// splitPhones tokenizes one or two raw phone fields into at most a primary
// and secondary number, deduplicated after normalization.
func splitPhones(primary, secondary string) (string, string) {
	tokens := strings.Split(phoneSeparators.Replace(primary)+"/"+phoneSeparators.Replace(secondary), "/")

	var unique []string
	for _, token := range tokens {
		normalized := normalizeSinglePhone(token)
		if normalized == "" {
			continue
		}
		seen := false
		for _, existing := range unique {
			if existing == normalized {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, normalized)
		}
	}

	switch len(unique) {
	case 0:
		return "", ""
	case 1:
		return unique[0], ""
	default:
		return unique[0], unique[1]
	}
}
