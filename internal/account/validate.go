package account

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validPassword enforces the signup policy: at least 8 characters with at
// least one uppercase letter and one digit.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

func (s *Service) emailEqual(a, b string) bool {
	if s.cfg.NormalizeEmails {
		return strings.EqualFold(a, b)
	}
	return a == b
}
