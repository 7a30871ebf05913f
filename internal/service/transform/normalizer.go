// internal/service/transform/normalizer.go

package transform

import "strings"

// NormalizeKeyword cleans a raw keyword or hashtag value pulled out of a
// scraped item. Scraped payloads are untyped, so the input may be anything;
// only strings qualify. The second return value is false when no usable
// keyword is present. The returned string may still be empty after stripping,
// which callers treat as invalid.
func NormalizeKeyword(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.ReplaceAll(s, "#", "")
	s = strings.ReplaceAll(s, "@", "")
	return strings.TrimSpace(s), true
}
