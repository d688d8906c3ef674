package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateUsername derives a username from a member's full name by
// lowercasing it and stripping everything that is not a letter or digit.
// A name with no usable characters falls back to a time-based value so the
// result is never empty.
func GenerateUsername(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (unicode.IsLetter(r) && r <= unicode.MaxASCII) || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("user%d", time.Now().UnixMilli())
	}
	return b.String()
}
