// Package server wires the storage, services and transports of the backend
// together and runs them until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/auth"
	"github.com/domunity/backend/internal/server/config"
	"github.com/domunity/backend/internal/server/httpapi"
	"github.com/domunity/backend/internal/server/metrics"
	"github.com/domunity/backend/internal/server/password"
	"github.com/domunity/backend/internal/server/repositories/repomanager"
	"github.com/domunity/backend/internal/server/services"
	"github.com/domunity/backend/internal/server/telemetry"
	"github.com/domunity/backend/internal/server/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/domunity/backend/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const serviceName = "domunity-backend"

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	grpcServer     *gs.GRPCServer
	httpServer     *httpapi.Server
	shutdownTracer telemetry.ShutdownFunc
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.Env)

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, c.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracer init error: %w", err)
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(c.DatabaseMaxConns)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	app, err := assemble(ctx, c, logger, db, repomanager.NewPostgresRepositoryManager(m), reg, m)
	if err != nil {
		db.Close()
		return nil, err
	}
	app.shutdownTracer = shutdownTracer
	return app, nil
}

// assemble runs migrations and builds services and transports on top of an
// open database.
func assemble(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager, reg *prometheus.Registry, m *metrics.Metrics) (*App, error) {
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "domunity"),
	)

	tokens := auth.NewTokenService(c.SecretKey)
	if err := tokens.Ready(); err != nil {
		logger.Warn(ctx, "token signing is disabled, every auth call will fail", "error", err.Error())
	}

	v := validation.New()
	authService := services.NewAuthService(
		rm.Users(db),
		tokens,
		password.NewHasher(c.BcryptCost),
		v,
		services.TokenTTLs{Access: c.AccessTokenValidityDuration, Refresh: c.RefreshTokenValidityDuration},
	)
	contactService := services.NewContactService(rm.Contacts(db), v, logger)
	offerService := services.NewOfferService(rm.Offers(db), v, logger, time.Now)

	grpcServer := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, authService, contactService, offerService, gs.WithMetrics(m))

	router := httpapi.NewRouter(httpapi.RouterConfig{
		ServiceName:    serviceName,
		AllowedOrigins: c.AllowedOrigins,
		DB:             db,
		Gatherer:       reg,
		Metrics:        m,
		RPC:            grpcServer,
	})

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		grpcServer:     grpcServer,
		httpServer:     httpapi.NewServer(c.HTTPAddr, router, logger),
		shutdownTracer: func(context.Context) error { return nil },
	}, nil
}

// initSignalHandler cancels on a termination signal. The handler is
// released once ctx is done; the returned channel closes at that point.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
	return stopped
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves gRPC and ops HTTP until ctx is cancelled, a termination signal
// arrives or either server fails, then releases the database and tracer.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	signalsStopped := app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	cancelFunc()
	<-signalsStopped

	app.close(context.WithoutCancel(ctx))
}

func (app *App) close(ctx context.Context) {
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err.Error())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := app.shutdownTracer(shutdownCtx); err != nil {
		app.logger.Error(ctx, "tracer shutdown failed", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
