package service_test

import (
	"context"
	"testing"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/mocks"
	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/aerodesk/skypatterns/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func patternRequest(airlineID, originID, destinationID uuid.UUID) *models.FlightPatternRequest {
	return &models.FlightPatternRequest{
		AirlineID:     airlineID,
		OriginID:      originID,
		DestinationID: destinationID,
		FlightNumber:  "SP100",
		DepartureTime: "10:00",
		ArrivalTime:   "14:30",
		DaysOfWeek:    []string{"MON", "WED"},
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePattern(t *testing.T) {
	airlineID := uuid.New()
	originID := uuid.New()
	destinationID := uuid.New()

	airline := &models.Airline{ID: airlineID, Name: "Sky Air", Code: "SA"}
	origin := &models.Airport{ID: originID, Code: "MAD", Timezone: "Europe/Madrid"}
	destination := &models.Airport{ID: destinationID, Code: "JFK", Timezone: "America/New_York"}

	t.Run("successful creation", func(t *testing.T) {
		patternRepo := new(mocks.MockFlightPatternRepository)
		airlineRepo := new(mocks.MockAirlineRepository)
		airportRepo := new(mocks.MockAirportRepository)
		svc := service.NewPatternService(patternRepo, airlineRepo, airportRepo, zap.NewNop())
		ctx := context.Background()

		airlineRepo.On("GetByID", ctx, airlineID).Return(airline, nil)
		airportRepo.On("GetByID", ctx, originID).Return(origin, nil)
		airportRepo.On("GetByID", ctx, destinationID).Return(destination, nil)
		patternRepo.On("Create", ctx, mock.AnythingOfType("*models.FlightPattern")).Return(nil)

		created, err := svc.CreatePattern(ctx, patternRequest(airlineID, originID, destinationID))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "SA", created.Airline.Code)
		assert.Equal(t, "MAD", created.Origin.Code)
		assert.Equal(t, []schedule.Weekday{schedule.Monday, schedule.Wednesday}, created.DaysOfWeek)
		assert.Equal(t, "USD", created.Currency, "currency defaults to USD")
		assert.True(t, created.Active, "patterns default to active")
		patternRepo.AssertExpectations(t)
	})

	t.Run("unknown airline", func(t *testing.T) {
		patternRepo := new(mocks.MockFlightPatternRepository)
		airlineRepo := new(mocks.MockAirlineRepository)
		airportRepo := new(mocks.MockAirportRepository)
		svc := service.NewPatternService(patternRepo, airlineRepo, airportRepo, zap.NewNop())
		ctx := context.Background()

		airlineRepo.On("GetByID", ctx, airlineID).Return(nil, models.ErrNotFound)

		_, err := svc.CreatePattern(ctx, patternRequest(airlineID, originID, destinationID))

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Contains(t, err.Error(), "invalid airline")
		patternRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown weekday token", func(t *testing.T) {
		patternRepo := new(mocks.MockFlightPatternRepository)
		airlineRepo := new(mocks.MockAirlineRepository)
		airportRepo := new(mocks.MockAirportRepository)
		svc := service.NewPatternService(patternRepo, airlineRepo, airportRepo, zap.NewNop())
		ctx := context.Background()

		airlineRepo.On("GetByID", ctx, airlineID).Return(airline, nil)
		airportRepo.On("GetByID", ctx, originID).Return(origin, nil)
		airportRepo.On("GetByID", ctx, destinationID).Return(destination, nil)

		req := patternRequest(airlineID, originID, destinationID)
		req.DaysOfWeek = []string{"MON", "FOO"}

		_, err := svc.CreatePattern(ctx, req)
		assert.ErrorIs(t, err, models.ErrUnknownWeekday)
	})
}

func TestGetPattern(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := service.NewPatternService(new(mocks.MockFlightPatternRepository), nil, nil, zap.NewNop())
		_, err := svc.GetPattern(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, models.ErrInvalidUUID)
	})

	t.Run("enriches the stored pattern", func(t *testing.T) {
		patternRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewPatternService(patternRepo, nil, nil, zap.NewNop())
		ctx := context.Background()

		id := uuid.New()
		stored := routePattern("SP900", []schedule.Weekday{schedule.Monday}, "09:00", nil)
		stored.ID = id
		// Keep the window open so enrichment relative to the wall clock
		// still finds a departure.
		stored.EndDate = time.Now().AddDate(1, 0, 0)
		patternRepo.On("GetByID", ctx, id).Return(&stored, nil)

		got, err := svc.GetPattern(ctx, id.String())

		require.NoError(t, err)
		assert.Equal(t, "SP900", got.FlightNumber)
		assert.NotNil(t, got.NextDepartureDate)
	})
}

func TestDeletePattern(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := service.NewPatternService(new(mocks.MockFlightPatternRepository), nil, nil, zap.NewNop())
		err := svc.DeletePattern(context.Background(), "nope")
		assert.ErrorIs(t, err, models.ErrInvalidUUID)
	})

	t.Run("delegates to repository", func(t *testing.T) {
		patternRepo := new(mocks.MockFlightPatternRepository)
		svc := service.NewPatternService(patternRepo, nil, nil, zap.NewNop())
		ctx := context.Background()

		id := uuid.New()
		patternRepo.On("Delete", ctx, id).Return(nil)

		assert.NoError(t, svc.DeletePattern(ctx, id.String()))
		patternRepo.AssertExpectations(t)
	})
}
