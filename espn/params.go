package espn

import (
	"errors"
	"fmt"
)

// Standings grouping levels, least to most specific. Each sport translates
// these into its provider-native group parameter.
const (
	GroupLeague     = "league"
	GroupConference = "conference"
	GroupDivision   = "division"
)

// ErrPartialDate is returned when only some of year/month/day are set.
// Upstream behavior for a partially built date string is undefined, so the
// builder requires all-or-none instead of guessing.
var ErrPartialDate = errors.New("espn: date requires year, month and day together (or none)")

// Date is an optional calendar date for schedule and scoreboard requests.
// The zero value means "let the provider pick the current date".
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether no date component was supplied.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) partial() bool {
	return !d.IsZero() && (d.Year == 0 || d.Month == 0 || d.Day == 0)
}

// Param renders the date as the provider's YYYYMMDD form, month and day
// zero-padded to two digits. The boolean reports whether a date parameter
// should be sent at all.
func (d Date) Param() (string, bool, error) {
	if d.IsZero() {
		return "", false, nil
	}
	if d.partial() {
		return "", false, ErrPartialDate
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day), true, nil
}
