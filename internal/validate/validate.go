// Package validate holds pure input validators for the conversation flows.
// Validators report failures as locale keys so the message catalog stays
// swappable.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
)

// Error carries a locale key describing why input was rejected
type Error struct {
	Key string
}

func (e *Error) Error() string {
	return e.Key
}

// Key extracts the locale key from a validation error, or empty string
func Key(err error) string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Key
	}
	return ""
}

const maxNameLength = 100

var (
	dateRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	timeRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// Date parses a DD.MM.YYYY string into a calendar date. The components must
// round-trip exactly (31.04 is rejected even though the pattern matches),
// February 29 requires a leap year, and the year must lie in
// [1900, current year]. A date later in the current year than today is
// accepted, matching how users enter "this year" birthdays.
func Date(input string) (time.Time, error) {
	match := dateRe.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return time.Time{}, &Error{Key: "validation.invalidDateFormat"}
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	if month == 2 && day == 29 && !isLeapYear(year) {
		return time.Time{}, &Error{Key: "validation.leapYearError"}
	}

	// time.Date normalizes overflow (31.04 becomes 01.05), so the components
	// must round-trip exactly for the date to be real
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, &Error{Key: "validation.invalidDate"}
	}

	currentYear := time.Now().Year()
	if year > currentYear || year < 1900 {
		return time.Time{}, &Error{Key: "validation.invalidDate"}
	}

	return date, nil
}

// Time validates an HH:MM string and normalizes it to zero-padded form
func Time(input string) (string, error) {
	match := timeRe.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return "", &Error{Key: "validation.invalidTimeFormat"}
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// Name trims the input and enforces the non-empty and length rules
func Name(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	if trimmed == "" {
		return "", &Error{Key: "validation.nameRequired"}
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return "", &Error{Key: "validation.nameTooLong"}
	}

	return trimmed, nil
}

// Category checks membership in the fixed category enumeration
func Category(input string) (domain.Category, error) {
	category := domain.Category(input)
	if !category.IsValid() {
		return "", &Error{Key: "validation.invalidCategory"}
	}
	return category, nil
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
