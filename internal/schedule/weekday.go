package schedule

import (
	"fmt"
	"time"
)

// Weekday is a day-of-week token in a pattern's weekly schedule template.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

// AllWeekdays is the canonical display and iteration order.
var AllWeekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

var isoNumbers = map[Weekday]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
	Sunday:    7,
}

// Valid reports whether w is one of the seven known tokens.
func (w Weekday) Valid() bool {
	_, ok := isoNumbers[w]
	return ok
}

// ISONumber returns the ISO 8601 day number (Monday=1 .. Sunday=7).
// It panics on an unknown token; callers are expected to validate first.
func (w Weekday) ISONumber() int {
	n, ok := isoNumbers[w]
	if !ok {
		panic(fmt.Sprintf("schedule: unknown weekday %q", string(w)))
	}
	return n
}

// ParseWeekday recognizes one of the seven tokens (MON..SUN).
func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(s)
	return w, w.Valid()
}

// FromISONumber converts an ISO day number (Monday=1 .. Sunday=7) into a
// token. Out-of-range input is a caller bug and panics.
func FromISONumber(n int) Weekday {
	if n < 1 || n > 7 {
		panic(fmt.Sprintf("schedule: iso weekday number %d out of range", n))
	}
	return AllWeekdays[n-1]
}

// FromNative converts the native calendar numbering (Sunday=0 .. Saturday=6,
// the convention of time.Weekday) into a token. Out-of-range input is a
// caller bug and panics.
func FromNative(n int) Weekday {
	if n < 0 || n > 6 {
		panic(fmt.Sprintf("schedule: native weekday number %d out of range", n))
	}
	// Sunday=0 native maps to ISO 7, the rest line up shifted by one.
	return FromISONumber((n+6)%7 + 1)
}

// FromTime converts a time.Weekday into a token.
func FromTime(d time.Weekday) Weekday {
	return FromNative(int(d))
}
