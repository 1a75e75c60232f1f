package cache

import (
	"regexp"
	"strings"
)

// Cache names may contain letters, digits, dots, hyphens and underscores,
// up to 128 characters.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,128}$`)

// ValidName reports whether name can be used as a cache name.
func ValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return nameRegex.MatchString(name)
}
