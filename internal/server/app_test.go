package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/config"
	"github.com/domunity/backend/internal/server/metrics"
	"github.com/domunity/backend/internal/server/repositories/repomanager"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMigrations struct {
	*repomanager.InMemoryRepositoryManager
}

func (failingMigrations) RunMigrations(context.Context, *sql.DB) error {
	return errors.New("boom")
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.HTTPAddr = "127.0.0.1:0"
	c.SecretKey = "0123456789abcdef0123456789abcdef"
	c.OTelEndpoint = ""
	return c
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func TestAssemble_BuildsApp(t *testing.T) {
	db, _ := newMockDB(t)
	reg := prometheus.NewRegistry()

	app, err := assemble(context.Background(), testConfig(), logging.Discard(), db,
		repomanager.NewInMemoryRepositoryManager(), reg, metrics.New(reg))
	require.NoError(t, err)

	assert.NotNil(t, app.grpcServer)
	assert.NotNil(t, app.httpServer)
	assert.Same(t, db, app.db)
}

func TestAssemble_MigrationError(t *testing.T) {
	db, _ := newMockDB(t)
	reg := prometheus.NewRegistry()

	_, err := assemble(context.Background(), testConfig(), logging.Discard(), db,
		failingMigrations{repomanager.NewInMemoryRepositoryManager()}, reg, metrics.New(reg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations error")
}

func TestAssemble_EmptySecretStillBuilds(t *testing.T) {
	db, _ := newMockDB(t)
	reg := prometheus.NewRegistry()
	c := testConfig()
	c.SecretKey = ""

	app, err := assemble(context.Background(), c, logging.Discard(), db,
		repomanager.NewInMemoryRepositoryManager(), reg, metrics.New(reg))
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()
	reg := prometheus.NewRegistry()

	app, err := assemble(context.Background(), testConfig(), logging.Discard(), db,
		repomanager.NewInMemoryRepositoryManager(), reg, metrics.New(reg))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunStopsWhenServerFails(t *testing.T) {
	db, _ := newMockDB(t)
	reg := prometheus.NewRegistry()
	c := testConfig()
	c.HTTPAddr = "bad::addr"

	app, err := assemble(context.Background(), c, logging.Discard(), db,
		repomanager.NewInMemoryRepositoryManager(), reg, metrics.New(reg))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after HTTP listen failure")
	}
}

func TestNewApp_OpenError(t *testing.T) {
	orig := openDB
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("no driver") }
	defer func() { openDB = orig }()

	_, err := NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_PingError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	orig := openDB
	openDB = func(string) (*sql.DB, error) { return db, nil }
	defer func() { openDB = orig }()

	_, err = NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_SignalHandlerReleasedOnCancel(t *testing.T) {
	app := &App{logger: logging.Discard()}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := app.initSignalHandler(ctx, cancel)
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("signal handler goroutine still running after cancel")
	}
}
