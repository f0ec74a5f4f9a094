package repository

import (
	"context"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/schedule"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FlightPatternRepository struct {
	db DBConn
}

func NewFlightPatternRepository(db DBConn) *FlightPatternRepository {
	return &FlightPatternRepository{db: db}
}

const selectPatterns = `
    SELECT
        P.id, P.flight_number, P.departure_time, P.arrival_time, P.days_of_week,
        P.start_date, P.end_date, P.price, P.currency, P.aircraft, P.capacity,
        P.distance_km, P.duration_min, P.active, P.created_at, P.updated_at,
        A.id, A.name, A.code, A.country, A.logo, A.created_at,
        O.id, O.code, O.name, O.city, O.country, O.timezone, O.created_at,
        D.id, D.code, D.name, D.city, D.country, D.timezone, D.created_at
    FROM flight_patterns P
    JOIN airlines A ON A.id = P.airline_id
    JOIN airports O ON O.id = P.origin_id
    JOIN airports D ON D.id = P.destination_id
`

func (r *FlightPatternRepository) Create(ctx context.Context, pattern *models.FlightPattern) error {
	query := `
        INSERT INTO flight_patterns (
            id, airline_id, origin_id, destination_id, flight_number,
            departure_time, arrival_time, days_of_week, start_date, end_date,
            price, currency, aircraft, capacity, distance_km, duration_min,
            active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `
	_, err := r.db.Exec(ctx, query,
		pattern.ID, pattern.Airline.ID, pattern.Origin.ID, pattern.Destination.ID,
		pattern.FlightNumber, pattern.DepartureTime, pattern.ArrivalTime,
		weekdayStrings(pattern.DaysOfWeek), pattern.StartDate, pattern.EndDate,
		pattern.Price, pattern.Currency, pattern.Aircraft, pattern.Capacity,
		pattern.DistanceKm, pattern.DurationMin, pattern.Active,
		pattern.CreatedAt, pattern.UpdatedAt)
	return mapPgError(err)
}

func (r *FlightPatternRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FlightPattern, error) {
	rows, err := r.db.Query(ctx, selectPatterns+" WHERE P.id = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, models.ErrNotFound
	}
	pattern, err := scanPattern(rows)
	if err != nil {
		return nil, err
	}
	return pattern, rows.Err()
}

func (r *FlightPatternRepository) ListAll(ctx context.Context) ([]models.FlightPattern, error) {
	rows, err := r.db.Query(ctx, selectPatterns+" ORDER BY P.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatterns(rows)
}

// SearchByRoute returns the active patterns flying originCode→destinationCode.
// Inactive patterns never reach the search core.
func (r *FlightPatternRepository) SearchByRoute(ctx context.Context, originCode, destinationCode string) ([]models.FlightPattern, error) {
	query := selectPatterns + `
        WHERE O.code = $1 AND D.code = $2 AND P.active
        ORDER BY P.departure_time, P.flight_number
    `
	rows, err := r.db.Query(ctx, query, originCode, destinationCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatterns(rows)
}

func (r *FlightPatternRepository) Update(ctx context.Context, pattern *models.FlightPattern) error {
	query := `
        UPDATE flight_patterns
        SET airline_id = $2, origin_id = $3, destination_id = $4,
            flight_number = $5, departure_time = $6, arrival_time = $7,
            days_of_week = $8, start_date = $9, end_date = $10, price = $11,
            currency = $12, aircraft = $13, capacity = $14, distance_km = $15,
            duration_min = $16, active = $17, updated_at = $18
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		pattern.ID, pattern.Airline.ID, pattern.Origin.ID, pattern.Destination.ID,
		pattern.FlightNumber, pattern.DepartureTime, pattern.ArrivalTime,
		weekdayStrings(pattern.DaysOfWeek), pattern.StartDate, pattern.EndDate,
		pattern.Price, pattern.Currency, pattern.Aircraft, pattern.Capacity,
		pattern.DistanceKm, pattern.DurationMin, pattern.Active, pattern.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *FlightPatternRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flight_patterns WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func collectPatterns(rows pgx.Rows) ([]models.FlightPattern, error) {
	var patterns []models.FlightPattern
	for rows.Next() {
		pattern, err := scanPattern(rows)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, *pattern)
	}
	return patterns, rows.Err()
}

func scanPattern(rows pgx.Rows) (*models.FlightPattern, error) {
	var p models.FlightPattern
	var days []string
	err := rows.Scan(
		&p.ID, &p.FlightNumber, &p.DepartureTime, &p.ArrivalTime, &days,
		&p.StartDate, &p.EndDate, &p.Price, &p.Currency, &p.Aircraft, &p.Capacity,
		&p.DistanceKm, &p.DurationMin, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		&p.Airline.ID, &p.Airline.Name, &p.Airline.Code, &p.Airline.Country,
		&p.Airline.Logo, &p.Airline.CreatedAt,
		&p.Origin.ID, &p.Origin.Code, &p.Origin.Name, &p.Origin.City,
		&p.Origin.Country, &p.Origin.Timezone, &p.Origin.CreatedAt,
		&p.Destination.ID, &p.Destination.Code, &p.Destination.Name, &p.Destination.City,
		&p.Destination.Country, &p.Destination.Timezone, &p.Destination.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.DaysOfWeek = make([]schedule.Weekday, 0, len(days))
	for _, d := range days {
		// Unknown tokens in storage are skipped rather than failing the read.
		if w, ok := schedule.ParseWeekday(d); ok {
			p.DaysOfWeek = append(p.DaysOfWeek, w)
		}
	}
	return &p, nil
}

func weekdayStrings(days []schedule.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}
