package models

import (
	"errors"
	"time"

	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidUUID    = errors.New("invalid uuid")
	ErrDuplicateCode  = errors.New("code already in use")
	ErrResourceInUse  = errors.New("resource is referenced by flight patterns")
	ErrUnknownWeekday = errors.New("unknown weekday token")
	ErrRouteRequired  = errors.New("missing query params: from, to")
)

type Airline struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Country   string    `json:"country"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Airport struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FlightPattern is a recurring scheduled service template, not a single
// flight instance. Departure and arrival times are local to the origin
// airport; arrival is stored as-is and never reprojected across zones.
type FlightPattern struct {
	ID            uuid.UUID          `json:"id"`
	Airline       Airline            `json:"airline"`
	Origin        Airport            `json:"origin"`
	Destination   Airport            `json:"destination"`
	FlightNumber  string             `json:"flight_number"`
	DepartureTime string             `json:"departure_time"`
	ArrivalTime   string             `json:"arrival_time"`
	DaysOfWeek    []schedule.Weekday `json:"days_of_week"`
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	Price         *float64           `json:"price"`
	Currency      string             `json:"currency"`
	Aircraft      string             `json:"aircraft,omitempty"`
	Capacity      *int               `json:"capacity,omitempty"`
	DistanceKm    *float64           `json:"distance_km,omitempty"`
	DurationMin   *int               `json:"duration_min,omitempty"`
	Active        bool               `json:"active"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ScheduleTemplate is the calculator's view of the pattern.
func (p FlightPattern) ScheduleTemplate() schedule.Template {
	return schedule.Template{
		DaysOfWeek:    p.DaysOfWeek,
		DepartureTime: p.DepartureTime,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Timezone:      p.Origin.Timezone,
	}
}

// EnrichedFlightPattern is a pattern plus its derived next departure.
// NextDepartureDate is recomputed on every read and never persisted; it
// serializes as an RFC 3339 instant or null.
type EnrichedFlightPattern struct {
	FlightPattern
	NextDepartureDate *time.Time `json:"nextDepartureDate"`
}

type AirlineRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Code    string `json:"code" validate:"required,min=2,max=10"`
	Country string `json:"country" validate:"required,min=2,max=100"`
	Logo    string `json:"logo" validate:"omitempty,url"`
}

type AirportRequest struct {
	Code     string `json:"code" validate:"required,iata"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	City     string `json:"city" validate:"required,min=2,max=100"`
	Country  string `json:"country" validate:"required,min=2,max=100"`
	Timezone string `json:"timezone" validate:"omitempty,iana_tz"`
}

type FlightPatternRequest struct {
	AirlineID     uuid.UUID `json:"airline_id" validate:"required"`
	OriginID      uuid.UUID `json:"origin_id" validate:"required"`
	DestinationID uuid.UUID `json:"destination_id" validate:"required,necsfield=OriginID"`
	FlightNumber  string    `json:"flight_number" validate:"required,min=2,max=10"`
	DepartureTime string    `json:"departure_time" validate:"required,hhmm"`
	ArrivalTime   string    `json:"arrival_time" validate:"required,hhmm"`
	DaysOfWeek    []string  `json:"days_of_week" validate:"required,min=1,dive,weekday"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	Currency      string    `json:"currency" validate:"omitempty,len=3"`
	Aircraft      string    `json:"aircraft" validate:"omitempty,max=50"`
	Capacity      *int      `json:"capacity" validate:"omitempty,gt=0"`
	DistanceKm    *float64  `json:"distance_km" validate:"omitempty,gt=0"`
	DurationMin   *int      `json:"duration_min" validate:"omitempty,gt=0"`
	Active        *bool     `json:"active"`
}

// SearchFlightsRequest carries a parsed, shape-valid search query. Date is
// the optional target calendar day.
type SearchFlightsRequest struct {
	From string
	To   string
	Date *time.Time
}

// TicketRequest is a visitor's booking/contact request, collected for staff
// follow-up. No inventory or payment is attached.
type TicketRequest struct {
	ID              uuid.UUID  `json:"id"`
	FullName        string     `json:"full_name"`
	Phone           string     `json:"phone"`
	OriginCode      string     `json:"origin_code"`
	DestinationCode string     `json:"destination_code"`
	TravelDate      *time.Time `json:"travel_date"`
	Passengers      int        `json:"passengers"`
	Note            string     `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type TicketRequestInput struct {
	FullName        string     `json:"full_name" validate:"required,min=2,max=100"`
	Phone           string     `json:"phone" validate:"required,min=6,max=20"`
	OriginCode      string     `json:"origin_code" validate:"required,iata"`
	DestinationCode string     `json:"destination_code" validate:"required,iata"`
	TravelDate      *time.Time `json:"travel_date"`
	Passengers      int        `json:"passengers" validate:"omitempty,gte=1,lte=9"`
	Note            string     `json:"note" validate:"omitempty,max=500"`
}
