package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Domenick1991/airportsystem/api"
	"github.com/Domenick1991/airportsystem/config"
	"github.com/Domenick1991/airportsystem/internal/repository"
	"github.com/Domenick1991/airportsystem/internal/service/booking"
	"github.com/Domenick1991/airportsystem/internal/service/session"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	users repository.UserRepository,
	flights repository.FlightRepository,
	bookings booking.BookingUseCase,
	sessions session.SessionUseCase,
) error {
	router := NewRouter(users, flights, bookings, sessions)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires the handler groups. Exposed separately so tests can drive
// the full routing table.
func NewRouter(
	users repository.UserRepository,
	flights repository.FlightRepository,
	bookings booking.BookingUseCase,
	sessions session.SessionUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api.NewSessionHandler(sessions).Register(router.Group("/session"))
	api.NewUserHandler(users, bookings, sessions).Register(router.Group("/users"))
	api.NewFlightHandler(flights, bookings, sessions).Register(router.Group("/flights"))

	return router
}
