package mocks

import (
	"context"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFlightPatternRepository struct {
	mock.Mock
}

func (m *MockFlightPatternRepository) Create(ctx context.Context, pattern *models.FlightPattern) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockFlightPatternRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FlightPattern, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightPattern), args.Error(1)
}

func (m *MockFlightPatternRepository) ListAll(ctx context.Context) ([]models.FlightPattern, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlightPattern), args.Error(1)
}

func (m *MockFlightPatternRepository) SearchByRoute(ctx context.Context, originCode, destinationCode string) ([]models.FlightPattern, error) {
	args := m.Called(ctx, originCode, destinationCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlightPattern), args.Error(1)
}

func (m *MockFlightPatternRepository) Update(ctx context.Context, pattern *models.FlightPattern) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockFlightPatternRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) Create(ctx context.Context, airline *models.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airline), args.Error(1)
}

func (m *MockAirlineRepository) List(ctx context.Context) ([]models.Airline, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Update(ctx context.Context, airline *models.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

func (m *MockAirportRepository) List(ctx context.Context) ([]models.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airport), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *models.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTicketRequestRepository struct {
	mock.Mock
}

func (m *MockTicketRequestRepository) Create(ctx context.Context, request *models.TicketRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockTicketRequestRepository) List(ctx context.Context) ([]models.TicketRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TicketRequest), args.Error(1)
}
