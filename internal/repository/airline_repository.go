package repository

import (
	"context"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/google/uuid"
)

type AirlineRepository struct {
	db DBConn
}

func NewAirlineRepository(db DBConn) *AirlineRepository {
	return &AirlineRepository{db: db}
}

func (r *AirlineRepository) Create(ctx context.Context, airline *models.Airline) error {
	query := `
        INSERT INTO airlines (id, name, code, country, logo, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		airline.ID, airline.Name, airline.Code, airline.Country, airline.Logo, airline.CreatedAt)
	return mapPgError(err)
}

func (r *AirlineRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Airline, error) {
	query := `
        SELECT id, name, code, country, logo, created_at
        FROM airlines
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
	var airline models.Airline
	if err := rows.Scan(&airline.ID, &airline.Name, &airline.Code, &airline.Country,
		&airline.Logo, &airline.CreatedAt); err != nil {
		return nil, err
	}
	return &airline, rows.Err()
}

func (r *AirlineRepository) List(ctx context.Context) ([]models.Airline, error) {
	query := `
        SELECT id, name, code, country, logo, created_at
        FROM airlines
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var airlines []models.Airline
	for rows.Next() {
		var airline models.Airline
		if err := rows.Scan(&airline.ID, &airline.Name, &airline.Code, &airline.Country,
			&airline.Logo, &airline.CreatedAt); err != nil {
			return nil, err
		}
		airlines = append(airlines, airline)
	}
	return airlines, rows.Err()
}

func (r *AirlineRepository) Update(ctx context.Context, airline *models.Airline) error {
	query := `
        UPDATE airlines
        SET name = $2, code = $3, country = $4, logo = $5
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		airline.ID, airline.Name, airline.Code, airline.Country, airline.Logo)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *AirlineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM airlines WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
