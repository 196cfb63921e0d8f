// Package etag computes the weak content hash used for HTTP cache validation.
//
// The hash is the classic 32-bit rolling string hash (h = h*31 + c) over the
// UTF-16 code units of the body, rendered as the hex of its absolute value and
// wrapped in double quotes. Clients that cached a tag from an earlier
// deployment keep validating against the same values.
package etag

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Hash returns the unquoted hex hash of s.
func Hash(s string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 16)
}

// Generate returns the quoted entity tag for body.
func Generate(body []byte) string {
	return `"` + Hash(string(body)) + `"`
}

// Matches reports whether an If-None-Match header value matches tag. A list of
// tags and the "*" wildcard are honoured.
func Matches(ifNoneMatch, tag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == tag || candidate == "W/"+tag {
			return true
		}
	}
	return false
}
