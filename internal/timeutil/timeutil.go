// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour = 60
	MinutesInADay   = 24 * minutesInAnHour
)

var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

var errInvalidClock = errors.New("time of day must be in HH:MM format")

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds,
// rounding up partial seconds so that a countdown never shows 00:00 early.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := int(math.Ceil(val))
	if total < 0 {
		total = 0
	}

	return total / minutesInAnHour, total % minutesInAnHour
}

// ParseClock parses a time of day in HH:MM format and returns the number of
// minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", errInvalidClock, s)
	}

	hrs, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])

	return hrs*minutesInAnHour + mins, nil
}

// FormatClock renders a minutes-since-midnight value as HH:MM. Values that
// cross midnight wrap around and carry a +N suffix for the number of days
// crossed. Fractional minutes are dropped.
func FormatClock(minutes float64) string {
	total := int(math.Floor(minutes))
	if total < 0 {
		total = 0
	}

	days := total / MinutesInADay
	hrs, mins := MinsToHoursAndMins(total % MinutesInADay)

	clock := fmt.Sprintf("%02d:%02d", hrs, mins)
	if days > 0 {
		clock += fmt.Sprintf("+%d", days)
	}

	return clock
}

// FormatDuration renders a duration as MM:SS, or H:MM:SS once it reaches an
// hour.
func FormatDuration(d time.Duration) string {
	mins, secs := SecsToMinsAndSecs(d.Seconds())
	if mins < minutesInAnHour {
		return fmt.Sprintf("%02d:%02d", mins, secs)
	}

	hrs, mins := MinsToHoursAndMins(mins)

	return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
}

// FromStr resolves a user-supplied time of day. It accepts HH:MM directly and
// falls back to natural language such as "now" or "in 10 minutes", which is
// resolved relative to now. The result is always in HH:MM format.
func FromStr(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)

	if mins, err := ParseClock(s); err == nil {
		return FormatClock(float64(mins)), nil
	}

	dt, err := dps.Parse(&dps.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidClock, s)
	}

	return dt.Time.Format("15:04"), nil
}
