package service_test

import (
	"context"
	"testing"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/mocks"
	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/aerodesk/skypatterns/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func routePattern(flightNumber string, days []schedule.Weekday, departure string, price *float64) models.FlightPattern {
	return models.FlightPattern{
		FlightNumber:  flightNumber,
		DepartureTime: departure,
		ArrivalTime:   "15:00",
		DaysOfWeek:    days,
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Price:         price,
		Currency:      "USD",
		Origin:        models.Airport{Code: "MAD", Timezone: "UTC"},
		Destination:   models.Airport{Code: "JFK", Timezone: "America/New_York"},
		Active:        true,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func floatPtr(f float64) *float64 { return &f }

func TestSearchFlights(t *testing.T) {
	// Monday 2025-06-02; the target Wednesday is June 4.
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("enriches and ranks route results", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop(), service.WithClock(fixedClock(now)))
		ctx := context.Background()

		patterns := []models.FlightPattern{
			routePattern("SP500", []schedule.Weekday{schedule.Wednesday}, "10:00", floatPtr(500)),
			routePattern("SP300", []schedule.Weekday{schedule.Wednesday}, "10:00", floatPtr(300)),
		}
		mockRepo.On("SearchByRoute", ctx, "MAD", "JFK").Return(patterns, nil)

		target := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
		results, err := svc.SearchFlights(ctx, models.SearchFlightsRequest{
			From: "MAD",
			To:   "JFK",
			Date: &target,
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "SP300", results[0].FlightNumber, "cheaper same-day flight first")
		assert.Equal(t, "SP500", results[1].FlightNumber)
		require.NotNil(t, results[0].NextDepartureDate)
		assert.True(t, results[0].NextDepartureDate.Equal(time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)))
		mockRepo.AssertExpectations(t)
	})

	t.Run("target day beyond the next cycle still ranks that day's departures", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop(), service.WithClock(fixedClock(now)))
		ctx := context.Background()

		// The late flight also operates on the coming Monday; enriching
		// from the clock instead of the target day would hand it a June 2
		// departure and push it ahead of the cheaper 08:00 flight.
		patterns := []models.FlightPattern{
			routePattern("LATE", []schedule.Weekday{schedule.Monday, schedule.Wednesday}, "23:00", floatPtr(500)),
			routePattern("EARLY", []schedule.Weekday{schedule.Wednesday}, "08:00", floatPtr(100)),
		}
		mockRepo.On("SearchByRoute", ctx, "MAD", "JFK").Return(patterns, nil)

		target := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
		results, err := svc.SearchFlights(ctx, models.SearchFlightsRequest{
			From: "MAD",
			To:   "JFK",
			Date: &target,
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "EARLY", results[0].FlightNumber, "earlier target-day departure first")
		assert.Equal(t, "LATE", results[1].FlightNumber)
		require.NotNil(t, results[0].NextDepartureDate)
		require.NotNil(t, results[1].NextDepartureDate)
		assert.True(t, results[0].NextDepartureDate.Equal(time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC)))
		assert.True(t, results[1].NextDepartureDate.Equal(time.Date(2025, 6, 11, 23, 0, 0, 0, time.UTC)),
			"departure computed relative to the target day, not the clock")
	})

	t.Run("filters out patterns not operating on the target date", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop(), service.WithClock(fixedClock(now)))
		ctx := context.Background()

		patterns := []models.FlightPattern{
			routePattern("WED", []schedule.Weekday{schedule.Wednesday}, "10:00", floatPtr(100)),
			routePattern("FRI", []schedule.Weekday{schedule.Friday}, "10:00", floatPtr(10)),
		}
		mockRepo.On("SearchByRoute", ctx, "MAD", "JFK").Return(patterns, nil)

		target := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
		results, err := svc.SearchFlights(ctx, models.SearchFlightsRequest{
			From: "MAD",
			To:   "JFK",
			Date: &target,
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "WED", results[0].FlightNumber)
	})

	t.Run("no date returns soonest-first ordering", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop(), service.WithClock(fixedClock(now)))
		ctx := context.Background()

		patterns := []models.FlightPattern{
			routePattern("FRI", []schedule.Weekday{schedule.Friday}, "10:00", floatPtr(10)),
			routePattern("TUE", []schedule.Weekday{schedule.Tuesday}, "10:00", floatPtr(900)),
		}
		mockRepo.On("SearchByRoute", ctx, "MAD", "JFK").Return(patterns, nil)

		results, err := svc.SearchFlights(ctx, models.SearchFlightsRequest{From: "MAD", To: "JFK"})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "TUE", results[0].FlightNumber, "Tuesday June 3 departs before Friday June 6")
	})

	t.Run("missing route params", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop())

		_, err := svc.SearchFlights(context.Background(), models.SearchFlightsRequest{From: "MAD"})
		assert.ErrorIs(t, err, models.ErrRouteRequired)
		mockRepo.AssertNotCalled(t, "SearchByRoute")
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop())
		ctx := context.Background()

		mockRepo.On("SearchByRoute", ctx, "MAD", "JFK").Return(nil, assert.AnError)

		_, err := svc.SearchFlights(ctx, models.SearchFlightsRequest{From: "MAD", To: "JFK"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestListPatterns(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("preserves repository order and enriches", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop(), service.WithClock(fixedClock(now)))
		ctx := context.Background()

		patterns := []models.FlightPattern{
			routePattern("NEWEST", []schedule.Weekday{schedule.Wednesday}, "10:00", nil),
			routePattern("OLDEST", nil, "10:00", nil),
		}
		mockRepo.On("ListAll", ctx).Return(patterns, nil)

		results, err := svc.ListPatterns(ctx)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "NEWEST", results[0].FlightNumber)
		assert.NotNil(t, results[0].NextDepartureDate)
		assert.Nil(t, results[1].NextDepartureDate, "empty weekday set yields no departure")
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewSearchService(mockRepo, zap.NewNop())
		ctx := context.Background()

		mockRepo.On("ListAll", ctx).Return(nil, assert.AnError)

		_, err := svc.ListPatterns(ctx)
		assert.Error(t, err)
	})
}
