package schedule

import "time"

// SearchHorizonDays bounds the forward scan. A weekly pattern with at least
// one operating day inside a wide-enough window always matches within 7
// days; the margin covers reference instants near the window edges while
// keeping worst-case work fixed.
const SearchHorizonDays = 21

// Template carries the schedule fields of a flight pattern that determine
// its concrete departures.
type Template struct {
	DaysOfWeek    []Weekday
	DepartureTime string
	StartDate     time.Time
	EndDate       time.Time
	Timezone      string
}

// NextDeparture computes the earliest concrete departure instant at or
// after ref: the first day inside [StartDate, EndDate] whose weekday (in
// the resolved zone) is in DaysOfWeek, combined with DepartureTime in that
// zone. A zero ref means "now".
//
// Malformed input never escalates: a bad time string, an empty weekday set,
// missing dates or an inverted window all yield ok=false, so one broken
// pattern cannot abort a batch.
func NextDeparture(tpl Template, ref time.Time) (time.Time, bool) {
	tod, err := ParseTimeOfDay(tpl.DepartureTime)
	if err != nil {
		return time.Time{}, false
	}

	allowed := make(map[Weekday]struct{}, len(tpl.DaysOfWeek))
	for _, d := range tpl.DaysOfWeek {
		if d.Valid() {
			allowed[d] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return time.Time{}, false
	}

	if tpl.StartDate.IsZero() || tpl.EndDate.IsZero() {
		return time.Time{}, false
	}

	loc := ResolveLocation(tpl.Timezone)
	if ref.IsZero() {
		ref = time.Now()
	}
	now := ref.In(loc)
	start := startOfDay(tpl.StartDate.In(loc))
	end := endOfDay(tpl.EndDate.In(loc))
	if end.Before(start) {
		return time.Time{}, false
	}

	floor := startOfDay(now)
	if start.After(floor) {
		floor = start
	}

	year, month, day := floor.Date()
	for offset := 0; offset <= SearchHorizonDays; offset++ {
		date := time.Date(year, month, day+offset, 0, 0, 0, 0, loc)
		if date.After(end) {
			break
		}
		if _, ok := allowed[FromTime(date.Weekday())]; !ok {
			continue
		}

		candidate := time.Date(year, month, day+offset, tod.Hour, tod.Minute, 0, 0, loc)
		if candidate.Before(now) {
			continue
		}
		if candidate.Before(start) {
			continue
		}
		if candidate.After(end) {
			// Dates only increase from here, so the window is exhausted.
			return time.Time{}, false
		}
		return candidate, true
	}

	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
