package service

import "regexp"

const (
	nameMinLen = 2
	nameMaxLen = 30
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// validNameLength counts runes so multi-byte names are measured the way
// users see them.
func validNameLength(name string) bool {
	n := len([]rune(name))
	return n >= nameMinLen && n <= nameMaxLen
}
