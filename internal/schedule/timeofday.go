package schedule

import (
	"errors"
	"strconv"
)

// ErrBadTimeOfDay marks a departure/arrival time that is not HH:MM.
var ErrBadTimeOfDay = errors.New("time of day must be HH:MM")

// TimeOfDay is a wall-clock time without a date, local to some zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string. Hour must be 00-23 and
// minute 00-59, both exactly two digits; anything else returns
// ErrBadTimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, ErrBadTimeOfDay
	}
	hour, err := parseTwoDigits(s[0:2])
	if err != nil {
		return TimeOfDay{}, ErrBadTimeOfDay
	}
	minute, err := parseTwoDigits(s[3:5])
	if err != nil {
		return TimeOfDay{}, ErrBadTimeOfDay
	}
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, ErrBadTimeOfDay
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func parseTwoDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrBadTimeOfDay
		}
	}
	return strconv.Atoi(s)
}
