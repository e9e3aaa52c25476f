package utils

import "regexp"

var usernamePattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// IsValidUsername reports whether the username uses only lowercase letters,
// digits, hyphens and underscores.
func IsValidUsername(username string) bool {
	return username != "" && usernamePattern.MatchString(username)
}
