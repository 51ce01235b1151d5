// Package datetime provides month and date utility functions.
package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/marui-portal/pkg/constants"
)

// DateLayout is the format used for upload, input and creation dates.
const DateLayout = constants.DateLayout

// ErrUnknownMonth is returned when a month label cannot be parsed.
var ErrUnknownMonth = errors.New("unknown month")

// Month is a calendar month, January = 1.
type Month int

// Calendar months.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Months lists every month in calendar order.
var Months = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// Valid reports whether m is a calendar month.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// Index returns the zero-based position of the month within the year.
func (m Month) Index() int {
	return int(m) - 1
}

// Quarter returns the 1-based quarter the month falls in.
func (m Month) Quarter() int {
	return m.Index()/constants.MonthsPerQuarter + 1
}

// Short returns the three-letter label used by budget templates (e.g. "Jan").
func (m Month) Short() string {
	if !m.Valid() {
		return ""
	}
	return time.Month(m).String()[:3]
}

// String returns the full English month name used by sales records.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return time.Month(m).String()
}

// MarshalText encodes the month by its full name.
func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMonth, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts either the short or the full month name.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMonth parses "Jan", "January" or "january" into a Month.
func ParseMonth(label string) (Month, error) {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if len(trimmed) >= 3 {
		for _, m := range Months {
			full := strings.ToLower(m.String())
			if trimmed == full || trimmed == full[:3] {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, label)
}

// DaysIn returns the number of days of the month in the given year.
func DaysIn(m Month, year int) int {
	if !m.Valid() {
		return 0
	}
	return time.Date(year, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a date string using DateLayout.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
