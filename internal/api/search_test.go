package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/api"
	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSearchService struct {
	mock.Mock
}

func (m *mockSearchService) SearchFlights(ctx context.Context, req models.SearchFlightsRequest) ([]models.EnrichedFlightPattern, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EnrichedFlightPattern), args.Error(1)
}

func (m *mockSearchService) ListPatterns(ctx context.Context) ([]models.EnrichedFlightPattern, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EnrichedFlightPattern), args.Error(1)
}

func enrichedResult(flightNumber string, next time.Time) models.EnrichedFlightPattern {
	pattern := models.FlightPattern{
		ID:            uuid.New(),
		FlightNumber:  flightNumber,
		DepartureTime: "09:15",
		ArrivalTime:   "17:40",
		DaysOfWeek:    []schedule.Weekday{schedule.Monday},
		Active:        true,
	}
	pattern.Origin.Code = "MAD"
	pattern.Destination.Code = "JFK"
	return models.EnrichedFlightPattern{FlightPattern: pattern, NextDepartureDate: &next}
}

func TestSearchFlightsHandler(t *testing.T) {
	tests := []struct {
		name              string
		target            string
		setupMock         func(*mockSearchService)
		expectedCode      int
		expectedError     string
		expectedCodeField string
	}{
		{
			name:   "success",
			target: "/v1/flights/search?from=mad&to=jfk",
			setupMock: func(m *mockSearchService) {
				m.On("SearchFlights", mock.Anything, models.SearchFlightsRequest{From: "MAD", To: "JFK"}).
					Return([]models.EnrichedFlightPattern{
						enrichedResult("SP300", time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "success with date",
			target: "/v1/flights/search?from=MAD&to=JFK&date=2025-06-02",
			setupMock: func(m *mockSearchService) {
				date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
				m.On("SearchFlights", mock.Anything, models.SearchFlightsRequest{From: "MAD", To: "JFK", Date: &date}).
					Return([]models.EnrichedFlightPattern{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:              "missing params",
			target:            "/v1/flights/search?from=MAD",
			setupMock:         func(m *mockSearchService) {},
			expectedCode:      http.StatusBadRequest,
			expectedError:     "missing query params: from, to",
			expectedCodeField: "BAD_REQUEST",
		},
		{
			name:              "malformed date",
			target:            "/v1/flights/search?from=MAD&to=JFK&date=02-06-2025",
			setupMock:         func(m *mockSearchService) {},
			expectedCode:      http.StatusBadRequest,
			expectedError:     "date must be YYYY-MM-DD",
			expectedCodeField: "BAD_REQUEST",
		},
		{
			name:   "service error",
			target: "/v1/flights/search?from=MAD&to=JFK",
			setupMock: func(m *mockSearchService) {
				m.On("SearchFlights", mock.Anything, mock.Anything).
					Return(nil, errors.New("database down"))
			},
			expectedCode:      http.StatusInternalServerError,
			expectedCodeField: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockSearchService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			api.SearchFlightsHandler(svc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedCode == http.StatusOK {
				var results []models.EnrichedFlightPattern
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
				svc.AssertExpectations(t)
				return
			}

			var envelope struct {
				Error string `json:"error"`
				Code  string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, envelope.Error)
			}
			assert.Equal(t, tt.expectedCodeField, envelope.Code)
		})
	}
}

func TestSearchFlightsHandlerSerializesNextDeparture(t *testing.T) {
	svc := new(mockSearchService)
	next := time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)
	svc.On("SearchFlights", mock.Anything, mock.Anything).
		Return([]models.EnrichedFlightPattern{enrichedResult("SP300", next)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/flights/search?from=MAD&to=JFK", nil)
	rec := httptest.NewRecorder()
	api.SearchFlightsHandler(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "2025-06-02T09:15:00Z", results[0]["nextDepartureDate"])
}

func TestListPatternsHandler(t *testing.T) {
	svc := new(mockSearchService)
	svc.On("ListPatterns", mock.Anything).
		Return([]models.EnrichedFlightPattern{
			enrichedResult("SP100", time.Date(2025, 6, 3, 7, 30, 0, 0, time.UTC)),
			enrichedResult("SP300", time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/flight-patterns", nil)
	rec := httptest.NewRecorder()
	api.ListPatternsHandler(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var results []models.EnrichedFlightPattern
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 2)
}
