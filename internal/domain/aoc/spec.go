package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LaunchYear is the first year puzzles were published.
	LaunchYear = 2015

	// FirstDay and LastDay bound the puzzle days of a year.
	FirstDay = 1
	LastDay  = 25

	// TokenLength is the length of a session token in strict mode.
	TokenLength = 128

	// DefaultBaseURL is the puzzle service address.
	DefaultBaseURL = "https://adventofcode.com"

	// TokenKey and YearKey are the configuration keys read by SpecFromSource.
	TokenKey = "AOC_SESSION_TOKEN"
	YearKey  = "AOC_SESSION_YEAR"
)

var (
	// ErrYearOutOfRange is returned when the year is before LaunchYear or in the future.
	ErrYearOutOfRange = errors.New("year out of range")
	// ErrDayOutOfRange is returned when the day is not between FirstDay and LastDay.
	ErrDayOutOfRange = errors.New("day out of range")
	// ErrMissingToken is returned when no session token is set.
	ErrMissingToken = errors.New("session token is missing")
	// ErrInvalidToken is returned in strict mode when the token is not 128 hex characters.
	ErrInvalidToken = errors.New("session token is invalid")
)

// Lookup resolves a configuration value by key.
type Lookup interface {
	Get(key string) (string, bool)
}

// Spec identifies one puzzle and the credential used to fetch its input.
type Spec struct {
	// Token is the session cookie value.
	Token string
	// Day is the puzzle day.
	Day uint8
	// Year is the event year.
	Year uint16
	// StrictToken additionally requires Token to be TokenLength hex characters.
	StrictToken bool
}

// SpecFromSource builds a Spec with the token and year taken from src.
// A missing or unparseable year falls back to now's year. Day is left at zero.
func SpecFromSource(src Lookup, now time.Time) Spec {
	spec := Spec{
		Year: uint16(now.Year()), //nolint:gosec // Calendar years fit.
	}

	if src == nil {
		return spec
	}

	if token, ok := src.Get(TokenKey); ok {
		spec.Token = strings.TrimSpace(token)
	}

	if raw, ok := src.Get(YearKey); ok {
		if year, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16); err == nil {
			spec.Year = uint16(year)
		}
	}

	return spec
}

// WithToken returns a copy of s with the session token set.
func (s Spec) WithToken(token string) Spec {
	s.Token = token
	return s
}

// WithDay returns a copy of s with the day set.
func (s Spec) WithDay(day uint8) Spec {
	s.Day = day
	return s
}

// WithYear returns a copy of s with the year set.
func (s Spec) WithYear(year uint16) Spec {
	s.Year = year
	return s
}

// WithStrictToken returns a copy of s with strict token checking switched on or off.
func (s Spec) WithStrictToken(strict bool) Spec {
	s.StrictToken = strict
	return s
}

// Validate checks the spec against the current time.
func (s Spec) Validate() error {
	return s.ValidateAt(time.Now())
}

// ValidateAt checks year, day and token in that order and returns the first failure.
func (s Spec) ValidateAt(now time.Time) error {
	currentYear := now.Year()
	if int(s.Year) < LaunchYear || int(s.Year) > currentYear {
		return fmt.Errorf("year %d is not between %d and %d: %w", s.Year, LaunchYear, currentYear, ErrYearOutOfRange)
	}

	if s.Day < FirstDay || s.Day > LastDay {
		return fmt.Errorf("day %d is not between %d and %d: %w", s.Day, FirstDay, LastDay, ErrDayOutOfRange)
	}

	if s.Token == "" {
		return fmt.Errorf("%s is not set: %w", TokenKey, ErrMissingToken)
	}

	if s.StrictToken && !isHexToken(s.Token) {
		return fmt.Errorf("expected %d hex characters, got %d characters: %w", TokenLength, len(s.Token), ErrInvalidToken)
	}

	return nil
}

// RequestPath returns the input path relative to the service address.
func (s Spec) RequestPath() string {
	return fmt.Sprintf("/%d/day/%d/input", s.Year, s.Day)
}

// RequestURL returns the input URL. The spec is not validated.
func (s Spec) RequestURL() string {
	return DefaultBaseURL + s.RequestPath()
}

// MaskedToken returns the token with everything but the last four characters hidden.
func (s Spec) MaskedToken() string {
	const visible = 4

	if len(s.Token) <= visible {
		return strings.Repeat("*", len(s.Token))
	}

	return strings.Repeat("*", len(s.Token)-visible) + s.Token[len(s.Token)-visible:]
}

func isHexToken(token string) bool {
	if len(token) != TokenLength {
		return false
	}

	for _, c := range token {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
