package repository

import (
	"context"

	models "github.com/aerodesk/skypatterns/internal"
)

type TicketRequestRepository struct {
	db DBConn
}

func NewTicketRequestRepository(db DBConn) *TicketRequestRepository {
	return &TicketRequestRepository{db: db}
}

func (r *TicketRequestRepository) Create(ctx context.Context, request *models.TicketRequest) error {
	query := `
        INSERT INTO ticket_requests (
            id, full_name, phone, origin_code, destination_code,
            travel_date, passengers, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query,
		request.ID, request.FullName, request.Phone, request.OriginCode,
		request.DestinationCode, request.TravelDate, request.Passengers,
		request.Note, request.CreatedAt)
	return mapPgError(err)
}

func (r *TicketRequestRepository) List(ctx context.Context) ([]models.TicketRequest, error) {
	query := `
        SELECT id, full_name, phone, origin_code, destination_code,
               travel_date, passengers, note, created_at
        FROM ticket_requests
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.TicketRequest
	for rows.Next() {
		var req models.TicketRequest
		if err := rows.Scan(&req.ID, &req.FullName, &req.Phone, &req.OriginCode,
			&req.DestinationCode, &req.TravelDate, &req.Passengers,
			&req.Note, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
