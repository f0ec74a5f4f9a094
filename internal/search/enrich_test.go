package search_test

import (
	"testing"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/aerodesk/skypatterns/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPattern(days []schedule.Weekday, departure string) models.FlightPattern {
	return models.FlightPattern{
		FlightNumber:  "SP100",
		DepartureTime: departure,
		ArrivalTime:   "14:00",
		DaysOfWeek:    days,
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Origin:        models.Airport{Code: "MAD", Timezone: "UTC"},
		Destination:   models.Airport{Code: "JFK"},
		Active:        true,
	}
}

func TestEnrich(t *testing.T) {
	ref := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // Monday

	t.Run("attaches next departure", func(t *testing.T) {
		p := testPattern([]schedule.Weekday{schedule.Wednesday}, "10:00")
		enriched := search.Enrich(p, ref)

		require.NotNil(t, enriched.NextDepartureDate)
		assert.True(t, enriched.NextDepartureDate.Equal(time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)))
		assert.Equal(t, p.FlightNumber, enriched.FlightNumber)
	})

	t.Run("unschedulable pattern gets nil", func(t *testing.T) {
		p := testPattern(nil, "10:00")
		enriched := search.Enrich(p, ref)
		assert.Nil(t, enriched.NextDepartureDate)
	})

	t.Run("repeated enrichment is stable", func(t *testing.T) {
		p := testPattern([]schedule.Weekday{schedule.Wednesday}, "10:00")
		first := search.Enrich(p, ref)
		second := search.Enrich(p, ref)

		require.NotNil(t, first.NextDepartureDate)
		require.NotNil(t, second.NextDepartureDate)
		assert.True(t, first.NextDepartureDate.Equal(*second.NextDepartureDate))
	})

	t.Run("input pattern is not mutated", func(t *testing.T) {
		p := testPattern([]schedule.Weekday{schedule.Wednesday}, "10:00")
		before := p
		_ = search.Enrich(p, ref)
		assert.Equal(t, before, p)
	})
}

func TestEnrichAll(t *testing.T) {
	ref := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	patterns := []models.FlightPattern{
		testPattern([]schedule.Weekday{schedule.Wednesday}, "10:00"),
		testPattern(nil, "10:00"),
		testPattern([]schedule.Weekday{schedule.Monday}, "18:00"),
	}
	patterns[0].FlightNumber = "SP100"
	patterns[1].FlightNumber = "SP200"
	patterns[2].FlightNumber = "SP300"

	enriched := search.EnrichAll(patterns, ref)

	require.Len(t, enriched, 3)
	assert.Equal(t, "SP100", enriched[0].FlightNumber)
	assert.Equal(t, "SP200", enriched[1].FlightNumber)
	assert.Equal(t, "SP300", enriched[2].FlightNumber)

	assert.NotNil(t, enriched[0].NextDepartureDate)
	assert.Nil(t, enriched[1].NextDepartureDate)
	require.NotNil(t, enriched[2].NextDepartureDate)
	assert.True(t, enriched[2].NextDepartureDate.Equal(time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)))
}
