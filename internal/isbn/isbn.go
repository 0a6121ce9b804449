// Package isbn validates and normalizes ISBN input before it reaches the
// lookup endpoint.
package isbn

import (
	"errors"
	"strings"
)

// ErrInvalid means the input is not exactly 10 or 13 digits after removing
// hyphens and spaces.
var ErrInvalid = errors.New("ISBN must be exactly 10 or 13 digits")

// Clean strips hyphens and surrounding whitespace.
func Clean(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
}

// Valid reports whether the cleaned input is a 10- or 13-digit ISBN.
func Valid(raw string) bool {
	cleaned := Clean(raw)
	if len(cleaned) != 10 && len(cleaned) != 13 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize cleans the input and converts ISBN-10 to ISBN-13. The result is
// always a 13-digit ISBN.
func Normalize(raw string) (string, error) {
	cleaned := Clean(raw)
	if !Valid(cleaned) {
		return "", ErrInvalid
	}
	if len(cleaned) == 13 {
		return cleaned, nil
	}
	return To13(cleaned), nil
}

// To13 converts a 10-digit ISBN to its 13-digit form by prefixing 978 and
// recomputing the check digit.
func To13(isbn10 string) string {
	core := "978" + isbn10[:len(isbn10)-1]

	total := 0
	for i, r := range core {
		digit := int(r - '0')
		if i%2 == 0 {
			total += digit
		} else {
			total += digit * 3
		}
	}

	check := (10 - total%10) % 10
	return core + string(rune('0'+check))
}
