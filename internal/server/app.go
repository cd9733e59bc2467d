// Package server initializes and runs the application: it loads
// configuration, connects storage, wires the services and starts the HTTP
// server with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/cmartinr/reservasalas/internal/logging"
	"github.com/cmartinr/reservasalas/internal/server/config"
	serverhttp "github.com/cmartinr/reservasalas/internal/server/http"
	"github.com/cmartinr/reservasalas/internal/server/repositories/repomanager"
	"github.com/cmartinr/reservasalas/internal/server/repositories/reservations"
	"github.com/cmartinr/reservasalas/internal/server/repositories/users"
	"github.com/cmartinr/reservasalas/internal/server/services"
)

type App struct {
	config             *config.Config
	logger             logging.Logger
	userService        *services.UserService
	reservationService *services.ReservationService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	userRepo, reservationRepo, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	us := services.NewUserService(userRepo, cfg)
	rs := services.NewReservationService(reservationRepo)

	return &App{config: cfg, logger: logger, userService: us, reservationService: rs}, nil
}

// openRepositories connects the configured store. An empty DSN selects the
// in-memory repositories, which lose all data on restart.
func openRepositories(ctx context.Context, cfg *config.Config) (users.Repository, reservations.Repository, error) {

	if cfg.DatabaseDSN == "" {
		return users.NewInMemoryRepository(), reservations.NewInMemoryRepository(), nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return m.Users(db), m.Reservations(db), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := serverhttp.NewServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.reservationService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
