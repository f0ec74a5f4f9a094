package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerodesk/skypatterns/internal/api"
	"github.com/aerodesk/skypatterns/internal/app"
	"github.com/aerodesk/skypatterns/internal/ports"
	"github.com/aerodesk/skypatterns/internal/repository"
	"github.com/aerodesk/skypatterns/internal/service"
	"github.com/aerodesk/skypatterns/internal/utils"
	"github.com/aerodesk/skypatterns/pkg/config"
	"github.com/aerodesk/skypatterns/pkg/health"
	"github.com/aerodesk/skypatterns/pkg/logger"
	"github.com/aerodesk/skypatterns/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type App struct {
	config  *config.Config
	log     *zap.Logger
	metrics *metrics.Metrics
	server  *http.Server
	db      *pgxpool.Pool
}

func NewApp(cfg *config.Config, log *zap.Logger) *App {
	return &App{
		config:  cfg,
		log:     log,
		metrics: metrics.New(cfg.App.MetricsNamespace),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.setupDatabase(ctx); err != nil {
		return fmt.Errorf("database setup failed: %w", err)
	}

	if err := a.migrate(ctx); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	a.setupServer()
	return nil
}

func (a *App) setupDatabase(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	return nil
}

func (a *App) migrate(ctx context.Context) error {
	migrator, err := app.NewMigrator(a.db, a.config.App.MigrationsDir, a.log)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Run(ctx)
}

func (a *App) setupServer() {
	services := a.setupServices()
	router := a.setupRouter(services)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      utils.WithLogging(router, a.log),
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}
}

type Services struct {
	Search   ports.SearchService
	Patterns ports.PatternService
	Catalog  ports.CatalogService
	Requests ports.RequestService
}

func (a *App) setupServices() Services {
	patternRepo := repository.NewFlightPatternRepository(a.db)
	airlineRepo := repository.NewAirlineRepository(a.db)
	airportRepo := repository.NewAirportRepository(a.db)
	requestRepo := repository.NewTicketRequestRepository(a.db)

	return Services{
		Search:   service.NewSearchService(patternRepo, a.log, service.WithSearchMetrics(a.metrics)),
		Patterns: service.NewPatternService(patternRepo, airlineRepo, airportRepo, a.log),
		Catalog:  service.NewCatalogService(airlineRepo, airportRepo, a.log),
		Requests: service.NewRequestService(requestRepo, a.log, a.metrics),
	}
}

func (a *App) setupRouter(services Services) http.Handler {
	router := http.NewServeMux()
	const versionPrefix = "/v1"

	router.HandleFunc("GET "+versionPrefix+"/health", health.HealthGet())
	router.Handle("GET "+versionPrefix+"/metrics", metrics.Handler())

	router.HandleFunc("GET "+versionPrefix+"/flights/search", api.SearchFlightsHandler(services.Search))

	router.HandleFunc("GET "+versionPrefix+"/flight-patterns", api.ListPatternsHandler(services.Search))
	router.HandleFunc("POST "+versionPrefix+"/flight-patterns", api.CreatePatternHandler(services.Patterns))
	router.HandleFunc("GET "+versionPrefix+"/flight-patterns/{id}", api.GetPatternHandler(services.Patterns))
	router.HandleFunc("PUT "+versionPrefix+"/flight-patterns/{id}", api.UpdatePatternHandler(services.Patterns))
	router.HandleFunc("DELETE "+versionPrefix+"/flight-patterns/{id}", api.DeletePatternHandler(services.Patterns))

	router.HandleFunc("GET "+versionPrefix+"/airlines", api.ListAirlinesHandler(services.Catalog))
	router.HandleFunc("POST "+versionPrefix+"/airlines", api.CreateAirlineHandler(services.Catalog))
	router.HandleFunc("GET "+versionPrefix+"/airlines/{id}", api.GetAirlineHandler(services.Catalog))
	router.HandleFunc("PUT "+versionPrefix+"/airlines/{id}", api.UpdateAirlineHandler(services.Catalog))
	router.HandleFunc("DELETE "+versionPrefix+"/airlines/{id}", api.DeleteAirlineHandler(services.Catalog))

	router.HandleFunc("GET "+versionPrefix+"/airports", api.ListAirportsHandler(services.Catalog))
	router.HandleFunc("POST "+versionPrefix+"/airports", api.CreateAirportHandler(services.Catalog))
	router.HandleFunc("GET "+versionPrefix+"/airports/{id}", api.GetAirportHandler(services.Catalog))
	router.HandleFunc("PUT "+versionPrefix+"/airports/{id}", api.UpdateAirportHandler(services.Catalog))
	router.HandleFunc("DELETE "+versionPrefix+"/airports/{id}", api.DeleteAirportHandler(services.Catalog))

	router.HandleFunc("POST "+versionPrefix+"/requests", api.CreateRequestHandler(services.Requests))
	router.HandleFunc("GET "+versionPrefix+"/requests", api.ListRequestsHandler(services.Requests))

	return router
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.log.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		a.log.Info("starting graceful shutdown")
		return a.Shutdown()
	case <-ctx.Done():
		return a.Shutdown()
	}
}

func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.db != nil {
		a.db.Close()
	}

	return nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	defer log.Sync()

	application := NewApp(cfg, log)
	if err := application.Initialize(ctx); err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := application.Run(ctx); err != nil {
		log.Fatal("application error", zap.Error(err))
	}
}
