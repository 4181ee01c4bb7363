package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/storage"
)

type FlightRepository interface {
	Add(ctx context.Context, flight domain.Flight) *domain.Flight
	Update(ctx context.Context, flight domain.Flight)
	Remove(ctx context.Context, id string)
	FindByID(ctx context.Context, id string) (*domain.Flight, bool)
	List(ctx context.Context) []domain.Flight
	ReplaceAll(ctx context.Context, flights []domain.Flight)
}

// KVFlightRepository mirrors KVUserRepository for the flight board.
type KVFlightRepository struct {
	mu      sync.RWMutex
	flights []domain.Flight
	kv      storage.KV
	logger  *zap.Logger
}

func NewFlightRepository(ctx context.Context, kv storage.KV, logger *zap.Logger, seed []domain.Flight) *KVFlightRepository {
	r := &KVFlightRepository{kv: kv, logger: logger}
	if err := storage.LoadJSON(ctx, kv, storage.KeyFlights, &r.flights, nil); err != nil {
		logger.Warn("restore flights snapshot failed, using defaults", zap.Error(err))
	}
	if len(r.flights) == 0 && len(seed) > 0 {
		r.flights = slices.Clone(seed)
		r.persist(ctx)
	}
	return r
}

func (r *KVFlightRepository) Add(ctx context.Context, flight domain.Flight) *domain.Flight {
	r.mu.Lock()
	defer r.mu.Unlock()

	flight.ID = uuid.NewString()
	if flight.BookedBy == nil {
		flight.BookedBy = []string{}
	}
	r.flights = append(r.flights, *flight.Clone())
	r.persist(ctx)
	return flight.Clone()
}

// Update replaces the record matching flight.ID and is a no-op when the id
// is unknown.
func (r *KVFlightRepository) Update(ctx context.Context, flight domain.Flight) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.flights {
		if r.flights[i].ID == flight.ID {
			r.flights[i] = *flight.Clone()
			r.persist(ctx)
			return
		}
	}
}

func (r *KVFlightRepository) Remove(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flights = slices.DeleteFunc(r.flights, func(f domain.Flight) bool { return f.ID == id })
	r.persist(ctx)
}

func (r *KVFlightRepository) FindByID(_ context.Context, id string) (*domain.Flight, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.flights {
		if r.flights[i].ID == id {
			return r.flights[i].Clone(), true
		}
	}
	return nil, false
}

func (r *KVFlightRepository) List(_ context.Context) []domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Flight, len(r.flights))
	for i := range r.flights {
		out[i] = *r.flights[i].Clone()
	}
	return out
}

func (r *KVFlightRepository) ReplaceAll(ctx context.Context, flights []domain.Flight) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flights = slices.Clone(flights)
	r.persist(ctx)
}

func (r *KVFlightRepository) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, r.kv, storage.KeyFlights, r.flights); err != nil {
		r.logger.Warn("persist flights snapshot failed", zap.Error(err))
	}
}

var _ FlightRepository = (*KVFlightRepository)(nil)
