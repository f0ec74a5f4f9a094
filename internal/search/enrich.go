package search

import (
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/schedule"
)

// Enrich attaches the computed next departure to a pattern. The input is
// copied, never mutated, and the result is a pure function of the pattern's
// schedule fields and ref (zero ref means "now").
func Enrich(p models.FlightPattern, ref time.Time) models.EnrichedFlightPattern {
	out := models.EnrichedFlightPattern{FlightPattern: p}
	if next, ok := schedule.NextDeparture(p.ScheduleTemplate(), ref); ok {
		out.NextDepartureDate = &next
	}
	return out
}

// EnrichAll enriches every pattern in order, producing a same-length slice.
func EnrichAll(patterns []models.FlightPattern, ref time.Time) []models.EnrichedFlightPattern {
	out := make([]models.EnrichedFlightPattern, len(patterns))
	for i, p := range patterns {
		out[i] = Enrich(p, ref)
	}
	return out
}
