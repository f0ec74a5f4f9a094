package ports

import (
	"context"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/google/uuid"
)

type AirlineRepository interface {
	Create(ctx context.Context, airline *models.Airline) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Airline, error)
	List(ctx context.Context) ([]models.Airline, error)
	Update(ctx context.Context, airline *models.Airline) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AirportRepository interface {
	Create(ctx context.Context, airport *models.Airport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Airport, error)
	List(ctx context.Context) ([]models.Airport, error)
	Update(ctx context.Context, airport *models.Airport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FlightPatternRepository interface {
	Create(ctx context.Context, pattern *models.FlightPattern) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FlightPattern, error)
	ListAll(ctx context.Context) ([]models.FlightPattern, error)
	SearchByRoute(ctx context.Context, originCode, destinationCode string) ([]models.FlightPattern, error)
	Update(ctx context.Context, pattern *models.FlightPattern) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TicketRequestRepository interface {
	Create(ctx context.Context, request *models.TicketRequest) error
	List(ctx context.Context) ([]models.TicketRequest, error)
}

type SearchService interface {
	SearchFlights(ctx context.Context, req models.SearchFlightsRequest) ([]models.EnrichedFlightPattern, error)
	ListPatterns(ctx context.Context) ([]models.EnrichedFlightPattern, error)
}

type PatternService interface {
	CreatePattern(ctx context.Context, req *models.FlightPatternRequest) (*models.FlightPattern, error)
	GetPattern(ctx context.Context, id string) (*models.EnrichedFlightPattern, error)
	UpdatePattern(ctx context.Context, id string, req *models.FlightPatternRequest) (*models.FlightPattern, error)
	DeletePattern(ctx context.Context, id string) error
}

type CatalogService interface {
	CreateAirline(ctx context.Context, req *models.AirlineRequest) (*models.Airline, error)
	GetAirline(ctx context.Context, id string) (*models.Airline, error)
	ListAirlines(ctx context.Context) ([]models.Airline, error)
	UpdateAirline(ctx context.Context, id string, req *models.AirlineRequest) (*models.Airline, error)
	DeleteAirline(ctx context.Context, id string) error

	CreateAirport(ctx context.Context, req *models.AirportRequest) (*models.Airport, error)
	GetAirport(ctx context.Context, id string) (*models.Airport, error)
	ListAirports(ctx context.Context) ([]models.Airport, error)
	UpdateAirport(ctx context.Context, id string, req *models.AirportRequest) (*models.Airport, error)
	DeleteAirport(ctx context.Context, id string) error
}

type RequestService interface {
	CreateRequest(ctx context.Context, input *models.TicketRequestInput) (*models.TicketRequest, error)
	ListRequests(ctx context.Context) ([]models.TicketRequest, error)
}
