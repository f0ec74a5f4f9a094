package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestService struct {
	repo    ports.TicketRequestRepository
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewRequestService(repo ports.TicketRequestRepository, log *zap.Logger, m *metrics.Metrics) *requestService {
	return &requestService{
		repo:    repo,
		log:     log,
		metrics: m,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, input *models.TicketRequestInput) (*models.TicketRequest, error) {
	passengers := input.Passengers
	if passengers == 0 {
		passengers = 1
	}

	request := &models.TicketRequest{
		ID:              uuid.New(),
		FullName:        input.FullName,
		Phone:           input.Phone,
		OriginCode:      input.OriginCode,
		DestinationCode: input.DestinationCode,
		TravelDate:      input.TravelDate,
		Passengers:      passengers,
		Note:            input.Note,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("error recording ticket request: %w", err)
	}
	if s.metrics != nil {
		s.metrics.TicketRequestsTotal.Inc()
	}
	s.log.Info("ticket request recorded",
		zap.String("id", request.ID.String()),
		zap.String("route", request.OriginCode+"-"+request.DestinationCode))
	return request, nil
}

func (s *requestService) ListRequests(ctx context.Context) ([]models.TicketRequest, error) {
	return s.repo.List(ctx)
}
