package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Domenick1991/airportsystem/config"
	"github.com/Domenick1991/airportsystem/internal/bootstrap"
	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/kafka"
	"github.com/Domenick1991/airportsystem/internal/repository"
	"github.com/Domenick1991/airportsystem/internal/service/booking"
	"github.com/Domenick1991/airportsystem/internal/service/session"
	"github.com/Domenick1991/airportsystem/internal/storage"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatal("init storage", zap.Error(err))
	}
	defer cleanup()

	var userSeed []domain.User
	var flightSeed []domain.Flight
	if !cfg.Seed.Disabled {
		userSeed = repository.DefaultUsers()
		flightSeed = repository.DefaultFlights()
	}

	users := repository.NewUserRepository(ctx, kv, logger, userSeed)
	flights := repository.NewFlightRepository(ctx, kv, logger, flightSeed)
	sessions := session.NewService(ctx, users, kv, logger)

	var opts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, booking.WithProducer(producer, cfg.Kafka.TicketsTopic))
	}
	bookings := booking.NewBookingService(users, flights, sessions, logger, opts...)

	logger.Info("starting http server", zap.String("address", cfg.HTTP.Address), zap.String("storage", cfg.Storage.Driver))
	if err := bootstrap.Run(ctx, cfg, users, flights, bookings, sessions); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newStore(ctx context.Context, cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemory(), func() {}, nil
	case "redis":
		store := storage.NewRedisStore(cfg.Redis)
		return store, func() { store.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		store, err := storage.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
