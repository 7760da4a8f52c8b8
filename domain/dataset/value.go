package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampFormats are tried in order when parsing date/time text
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// booleanTokens is the accepted token set for boolean coercion
var booleanTokens = map[string]bool{
	"true":  true,
	"false": true,
	"0":     true,
	"1":     true,
	"yes":   true,
	"no":    true,
}

// ParseNumeric attempts a strict numeric parse. Infinities and NaN are
// rejected so downstream statistics stay finite.
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// ParseTimestamp attempts to parse date/time text against the known formats
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsBooleanToken reports whether the stringified value, lowercased,
// belongs to the boolean token set
func IsBooleanToken(s string) bool {
	return booleanTokens[strings.ToLower(strings.TrimSpace(s))]
}

// ParseBoolean maps a boolean token to its truth value
func ParseBoolean(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// formatFloat renders a float without trailing zeros
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
