package search

import (
	"math"
	"sort"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/schedule"
)

// Rank filters and orders enriched patterns for a search response.
//
// With a target date, patterns are first narrowed to those actually
// operating on that day: validity window containment plus weekday
// membership, re-checked here regardless of what the data source already
// filtered. The comparator then puts patterns departing on the target day
// first (by departure time, then price), and orders the rest by the default
// rule. Without a target date only the default rule applies: soonest next
// departure first, absent departures last, price ascending as tie-break
// with absent price treated as +Inf.
func Rank(patterns []models.EnrichedFlightPattern, target *time.Time) []models.EnrichedFlightPattern {
	ranked := make([]models.EnrichedFlightPattern, 0, len(patterns))
	if target == nil {
		ranked = append(ranked, patterns...)
	} else {
		for _, p := range patterns {
			if OperatesOn(p.FlightPattern, *target) {
				ranked = append(ranked, p)
			}
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j], target)
	})
	return ranked
}

// OperatesOn reports whether the pattern runs on the given calendar date:
// the date lies inside [StartDate, EndDate] and its weekday is in the
// pattern's weekday set. Authoritative over the derived next departure,
// which may fall on a different day.
func OperatesOn(p models.FlightPattern, date time.Time) bool {
	day := schedule.FromTime(date.Weekday())
	found := false
	for _, d := range p.DaysOfWeek {
		if d == day {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	key := dateKey(date)
	return dateKey(p.StartDate) <= key && key <= dateKey(p.EndDate)
}

func less(a, b models.EnrichedFlightPattern, target *time.Time) bool {
	if target != nil {
		aSame := departsOnDay(a, *target)
		bSame := departsOnDay(b, *target)
		if aSame != bSame {
			return aSame
		}
		if aSame {
			if !a.NextDepartureDate.Equal(*b.NextDepartureDate) {
				return a.NextDepartureDate.Before(*b.NextDepartureDate)
			}
			return priceOf(a) < priceOf(b)
		}
	}
	return defaultLess(a, b)
}

func defaultLess(a, b models.EnrichedFlightPattern) bool {
	switch {
	case a.NextDepartureDate == nil && b.NextDepartureDate == nil:
		return priceOf(a) < priceOf(b)
	case a.NextDepartureDate == nil:
		return false
	case b.NextDepartureDate == nil:
		return true
	}
	if !a.NextDepartureDate.Equal(*b.NextDepartureDate) {
		return a.NextDepartureDate.Before(*b.NextDepartureDate)
	}
	return priceOf(a) < priceOf(b)
}

// departsOnDay compares the next departure's calendar day, taken in the
// pattern's origin zone, with the target date.
func departsOnDay(p models.EnrichedFlightPattern, target time.Time) bool {
	if p.NextDepartureDate == nil {
		return false
	}
	loc := schedule.ResolveLocation(p.Origin.Timezone)
	return dateKey(p.NextDepartureDate.In(loc)) == dateKey(target)
}

func priceOf(p models.EnrichedFlightPattern) float64 {
	if p.Price == nil {
		return math.Inf(1)
	}
	return *p.Price
}

func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
