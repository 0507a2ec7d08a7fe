package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/config"
	"github.com/drivahub/drivahub/internal/events"
	"github.com/drivahub/drivahub/internal/extractor"
	"github.com/drivahub/drivahub/internal/handlers"
	"github.com/drivahub/drivahub/internal/metrics"
	"github.com/drivahub/drivahub/internal/pg"
	"github.com/drivahub/drivahub/internal/repo"
	"github.com/drivahub/drivahub/internal/service"
	"github.com/drivahub/drivahub/pkg/auth"
	"github.com/drivahub/drivahub/pkg/clients"
	"github.com/drivahub/drivahub/pkg/logger"
)

const (
	eventWorkers = 4
	eventQueue   = 256

	shutdownTimeout = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	publisher events.Publisher
	pool      *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	publisher, err := newPublisher(cfg)
	if err != nil {
		zap.L().Error("event publisher failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't connect event publisher: %w", err)
	}

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.pool = pool
	a.publisher = events.NewAsyncPublisher(publisher, eventWorkers, eventQueue)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, jwtService, extractor.New(cfg, clients.NewHTTPClient()), a.publisher)
	a.api = handlers.New(a.srv, jwtService)

	metrics.Init()

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		zap.L().Info("AMQP_URL is empty, events are only logged")
		return events.NewLogPublisher(), nil
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.release()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// release drains pending events and closes the database after the server stopped.
func (a *Application) release() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			zap.L().Error("event publisher close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	zap.L().Info("resources released")
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
