// Package validate holds the form rules shared by the account screens.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^0\d{9}$`)
)

// ValidationError reports malformed or missing user input. The user fixes
// the field and retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func New(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// Required fails on the first blank value. fields alternates name, value.
func Required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return New(fields[i], "is required")
		}
	}
	return nil
}

// Email accepts local@domain where domain contains a dot.
func Email(s string) error {
	if !emailRe.MatchString(s) {
		return New("email", "invalid email address")
	}
	return nil
}

// Phone accepts exactly ten digits starting with 0.
func Phone(s string) error {
	if !phoneRe.MatchString(s) {
		return New("phone", "must be 10 digits starting with 0")
	}
	return nil
}
