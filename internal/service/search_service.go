package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/search"
	"github.com/aerodesk/skypatterns/pkg/metrics"
	"go.uber.org/zap"
)

type searchService struct {
	repo    ports.FlightPatternRepository
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type SearchOption func(*searchService)

// WithClock fixes the reference instant used for enrichment. Tests inject a
// deterministic clock here; production uses time.Now.
func WithClock(now func() time.Time) SearchOption {
	return func(s *searchService) {
		s.now = now
	}
}

// WithSearchMetrics attaches prometheus instruments.
func WithSearchMetrics(m *metrics.Metrics) SearchOption {
	return func(s *searchService) {
		s.metrics = m
	}
}

func NewSearchService(repo ports.FlightPatternRepository, log *zap.Logger, opts ...SearchOption) *searchService {
	s := &searchService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchFlights reads the matching route's active patterns, enriches them
// with their next departure, and ranks them. Enrichment is relative to the
// current clock, except that a target date ahead of the clock moves the
// reference to that day's start, so departures land on the day being asked
// about and the same-day tier of the ranking can order them. The
// target-date filter is applied here even though the data source also
// filters, so a looser upstream never leaks non-operating patterns.
func (s *searchService) SearchFlights(ctx context.Context, req models.SearchFlightsRequest) ([]models.EnrichedFlightPattern, error) {
	if req.From == "" || req.To == "" {
		return nil, models.ErrRouteRequired
	}
	started := time.Now()

	patterns, err := s.repo.SearchByRoute(ctx, req.From, req.To)
	if err != nil {
		s.countError("search")
		return nil, fmt.Errorf("error searching route %s-%s: %w", req.From, req.To, err)
	}

	ref := s.now()
	if req.Date != nil && req.Date.After(ref) {
		ref = *req.Date
	}
	enriched := search.EnrichAll(patterns, ref)
	ranked := search.Rank(enriched, req.Date)

	if s.metrics != nil {
		s.metrics.SearchesTotal.Inc()
		s.metrics.SearchDuration.Observe(time.Since(started).Seconds())
	}
	s.log.Debug("flight search served",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int("candidates", len(patterns)),
		zap.Int("results", len(ranked)))

	return ranked, nil
}

// ListPatterns returns every pattern enriched, newest first, for the public
// explore listing.
func (s *searchService) ListPatterns(ctx context.Context) ([]models.EnrichedFlightPattern, error) {
	patterns, err := s.repo.ListAll(ctx)
	if err != nil {
		s.countError("list_patterns")
		return nil, fmt.Errorf("error listing patterns: %w", err)
	}
	return search.EnrichAll(patterns, s.now()), nil
}

func (s *searchService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsTotal.WithLabelValues(operation).Inc()
	}
}
