package schedule

import "time"

// ResolveLocation resolves an optional IANA zone name, falling back to UTC
// when the name is empty or unknown. It never fails: every pattern gets a
// usable zone even when the origin airport has none recorded.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
