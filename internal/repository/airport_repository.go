package repository

import (
	"context"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/google/uuid"
)

type AirportRepository struct {
	db DBConn
}

func NewAirportRepository(db DBConn) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	query := `
        INSERT INTO airports (id, code, name, city, country, timezone, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query,
		airport.ID, airport.Code, airport.Name, airport.City, airport.Country,
		airport.Timezone, airport.CreatedAt)
	return mapPgError(err)
}

func (r *AirportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	query := `
        SELECT id, code, name, city, country, timezone, created_at
        FROM airports
        WHERE id = $1
    `
	rows, err := r.db.Query(ctx, query, id)
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
	var airport models.Airport
	if err := rows.Scan(&airport.ID, &airport.Code, &airport.Name, &airport.City,
		&airport.Country, &airport.Timezone, &airport.CreatedAt); err != nil {
		return nil, err
	}
	return &airport, rows.Err()
}

func (r *AirportRepository) List(ctx context.Context) ([]models.Airport, error) {
	query := `
        SELECT id, code, name, city, country, timezone, created_at
        FROM airports
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var airports []models.Airport
	for rows.Next() {
		var airport models.Airport
		if err := rows.Scan(&airport.ID, &airport.Code, &airport.Name, &airport.City,
			&airport.Country, &airport.Timezone, &airport.CreatedAt); err != nil {
			return nil, err
		}
		airports = append(airports, airport)
	}
	return airports, rows.Err()
}

func (r *AirportRepository) Update(ctx context.Context, airport *models.Airport) error {
	query := `
        UPDATE airports
        SET code = $2, name = $3, city = $4, country = $5, timezone = $6
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		airport.ID, airport.Code, airport.Name, airport.City, airport.Country, airport.Timezone)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *AirportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
