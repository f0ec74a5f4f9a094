package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type catalogService struct {
	airlines ports.AirlineRepository
	airports ports.AirportRepository
	log      *zap.Logger
}

func NewCatalogService(airlines ports.AirlineRepository, airports ports.AirportRepository, log *zap.Logger) *catalogService {
	return &catalogService{
		airlines: airlines,
		airports: airports,
		log:      log,
	}
}

func (s *catalogService) CreateAirline(ctx context.Context, req *models.AirlineRequest) (*models.Airline, error) {
	airline := &models.Airline{
		ID:        uuid.New(),
		Name:      req.Name,
		Code:      req.Code,
		Country:   req.Country,
		Logo:      req.Logo,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.airlines.Create(ctx, airline); err != nil {
		return nil, fmt.Errorf("error creating airline: %w", err)
	}
	s.log.Info("airline created", zap.String("code", airline.Code))
	return airline, nil
}

func (s *catalogService) GetAirline(ctx context.Context, id string) (*models.Airline, error) {
	airlineID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrInvalidUUID
	}
	return s.airlines.GetByID(ctx, airlineID)
}

func (s *catalogService) ListAirlines(ctx context.Context) ([]models.Airline, error) {
	return s.airlines.List(ctx)
}

func (s *catalogService) UpdateAirline(ctx context.Context, id string, req *models.AirlineRequest) (*models.Airline, error) {
	airlineID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrInvalidUUID
	}
	airline, err := s.airlines.GetByID(ctx, airlineID)
	if err != nil {
		return nil, err
	}
	airline.Name = req.Name
	airline.Code = req.Code
	airline.Country = req.Country
	airline.Logo = req.Logo

	if err := s.airlines.Update(ctx, airline); err != nil {
		return nil, fmt.Errorf("error updating airline: %w", err)
	}
	return airline, nil
}

func (s *catalogService) DeleteAirline(ctx context.Context, id string) error {
	airlineID, err := uuid.Parse(id)
	if err != nil {
		return models.ErrInvalidUUID
	}
	return s.airlines.Delete(ctx, airlineID)
}

func (s *catalogService) CreateAirport(ctx context.Context, req *models.AirportRequest) (*models.Airport, error) {
	airport := &models.Airport{
		ID:        uuid.New(),
		Code:      req.Code,
		Name:      req.Name,
		City:      req.City,
		Country:   req.Country,
		Timezone:  req.Timezone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, fmt.Errorf("error creating airport: %w", err)
	}
	s.log.Info("airport created", zap.String("code", airport.Code))
	return airport, nil
}

func (s *catalogService) GetAirport(ctx context.Context, id string) (*models.Airport, error) {
	airportID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrInvalidUUID
	}
	return s.airports.GetByID(ctx, airportID)
}

func (s *catalogService) ListAirports(ctx context.Context) ([]models.Airport, error) {
	return s.airports.List(ctx)
}

func (s *catalogService) UpdateAirport(ctx context.Context, id string, req *models.AirportRequest) (*models.Airport, error) {
	airportID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrInvalidUUID
	}
	airport, err := s.airports.GetByID(ctx, airportID)
	if err != nil {
		return nil, err
	}
	airport.Code = req.Code
	airport.Name = req.Name
	airport.City = req.City
	airport.Country = req.Country
	airport.Timezone = req.Timezone

	if err := s.airports.Update(ctx, airport); err != nil {
		return nil, fmt.Errorf("error updating airport: %w", err)
	}
	return airport, nil
}

func (s *catalogService) DeleteAirport(ctx context.Context, id string) error {
	airportID, err := uuid.Parse(id)
	if err != nil {
		return models.ErrInvalidUUID
	}
	return s.airports.Delete(ctx, airportID)
}
