// internal/service/transform/volume.go

package transform

import (
	"strconv"
	"strings"
)

// underRangeEstimate approximates volumes reported as "under N".
const underRangeEstimate = 5000

// ParseVolume converts an estimated interaction volume into a number.
// Scraped payloads report volume either as a JSON number or as a
// human-readable string like "12.3K" or "under 10K". Anything unparseable,
// including nil, yields 0 so a bad item can never poison the score formula.
// The result is never negative.
func ParseVolume(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return nonNegative(n)
	case int:
		return nonNegative(float64(n))
	case int64:
		return nonNegative(float64(n))
	case string:
		return parseVolumeString(n)
	default:
		return 0
	}
}

func nonNegative(n float64) float64 {
	if n < 0 {
		return 0
	}
	return n
}

func parseVolumeString(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	if strings.Contains(s, "under") {
		return underRangeEstimate
	}

	// Leading numeric portion: digits and decimal point only.
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}

	num, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}

	switch {
	case strings.Contains(s, "k"):
		return num * 1_000
	case strings.Contains(s, "m"):
		return num * 1_000_000
	default:
		return num
	}
}
