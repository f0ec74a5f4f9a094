package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/aerodesk/skypatterns/internal/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patternService struct {
	patterns ports.FlightPatternRepository
	airlines ports.AirlineRepository
	airports ports.AirportRepository
	log      *zap.Logger
}

func NewPatternService(
	patterns ports.FlightPatternRepository,
	airlines ports.AirlineRepository,
	airports ports.AirportRepository,
	log *zap.Logger,
) *patternService {
	return &patternService{
		patterns: patterns,
		airlines: airlines,
		airports: airports,
		log:      log,
	}
}

func (s *patternService) CreatePattern(ctx context.Context, req *models.FlightPatternRequest) (*models.FlightPattern, error) {
	pattern, err := s.buildPattern(ctx, req)
	if err != nil {
		return nil, err
	}
	pattern.ID = uuid.New()
	pattern.CreatedAt = time.Now().UTC()
	pattern.UpdatedAt = pattern.CreatedAt

	if err := s.patterns.Create(ctx, pattern); err != nil {
		return nil, fmt.Errorf("error creating flight pattern: %w", err)
	}
	s.log.Info("flight pattern created",
		zap.String("id", pattern.ID.String()),
		zap.String("flight_number", pattern.FlightNumber))
	return pattern, nil
}

func (s *patternService) GetPattern(ctx context.Context, id string) (*models.EnrichedFlightPattern, error) {
	patternID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrInvalidUUID
	}
	pattern, err := s.patterns.GetByID(ctx, patternID)
	if err != nil {
		return nil, err
	}
	enriched := search.Enrich(*pattern, time.Time{})
	return &enriched, nil
}

func (s *patternService) UpdatePattern(ctx context.Context, id string, req *models.FlightPatternRequest) (*models.FlightPattern, error) {
	patternID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrInvalidUUID
	}
	existing, err := s.patterns.GetByID(ctx, patternID)
	if err != nil {
		return nil, err
	}

	pattern, err := s.buildPattern(ctx, req)
	if err != nil {
		return nil, err
	}
	pattern.ID = existing.ID
	pattern.CreatedAt = existing.CreatedAt
	pattern.UpdatedAt = time.Now().UTC()

	if err := s.patterns.Update(ctx, pattern); err != nil {
		return nil, fmt.Errorf("error updating flight pattern: %w", err)
	}
	return pattern, nil
}

func (s *patternService) DeletePattern(ctx context.Context, id string) error {
	patternID, err := uuid.Parse(id)
	if err != nil {
		return models.ErrInvalidUUID
	}
	return s.patterns.Delete(ctx, patternID)
}

// buildPattern resolves the referenced airline and airports and converts the
// payload into the strict internal shape the core operates on.
func (s *patternService) buildPattern(ctx context.Context, req *models.FlightPatternRequest) (*models.FlightPattern, error) {
	airline, err := s.airlines.GetByID(ctx, req.AirlineID)
	if err != nil {
		return nil, fmt.Errorf("invalid airline: %w", err)
	}
	origin, err := s.airports.GetByID(ctx, req.OriginID)
	if err != nil {
		return nil, fmt.Errorf("invalid origin airport: %w", err)
	}
	destination, err := s.airports.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination airport: %w", err)
	}

	days := make([]schedule.Weekday, 0, len(req.DaysOfWeek))
	for _, token := range req.DaysOfWeek {
		day, ok := schedule.ParseWeekday(token)
		if !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownWeekday, token)
		}
		days = append(days, day)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &models.FlightPattern{
		Airline:       *airline,
		Origin:        *origin,
		Destination:   *destination,
		FlightNumber:  req.FlightNumber,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DaysOfWeek:    days,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Price:         req.Price,
		Currency:      currency,
		Aircraft:      req.Aircraft,
		Capacity:      req.Capacity,
		DistanceKm:    req.DistanceKm,
		DurationMin:   req.DurationMin,
		Active:        active,
	}, nil
}
