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

type UserRepository interface {
	Add(ctx context.Context, user domain.User) *domain.User
	Update(ctx context.Context, user domain.User)
	Remove(ctx context.Context, id string)
	FindByID(ctx context.Context, id string) (*domain.User, bool)
	FindByEmail(ctx context.Context, email string) (*domain.User, bool)
	List(ctx context.Context) []domain.User
	ReplaceAll(ctx context.Context, users []domain.User)
}

// KVUserRepository is the identity store: an in-memory collection that
// writes a full snapshot through to the KV store on every mutation. A failed
// write is logged and swallowed; memory stays authoritative for the rest of
// the run.
type KVUserRepository struct {
	mu     sync.RWMutex
	users  []domain.User
	kv     storage.KV
	logger *zap.Logger
}

// NewUserRepository restores the persisted collection, falling back to seed
// when nothing usable was stored. Malformed stored data is replaced by the
// seed rather than failing startup.
func NewUserRepository(ctx context.Context, kv storage.KV, logger *zap.Logger, seed []domain.User) *KVUserRepository {
	r := &KVUserRepository{kv: kv, logger: logger}
	if err := storage.LoadJSON(ctx, kv, storage.KeyUsers, &r.users, nil); err != nil {
		logger.Warn("restore users snapshot failed, using defaults", zap.Error(err))
	}
	if len(r.users) == 0 && len(seed) > 0 {
		r.users = slices.Clone(seed)
		r.persist(ctx)
	}
	return r
}

func (r *KVUserRepository) Add(ctx context.Context, user domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	if user.BookedTickets == nil {
		user.BookedTickets = []string{}
	}
	r.users = append(r.users, *user.Clone())
	r.persist(ctx)
	return user.Clone()
}

// Update replaces the record matching user.ID and is a no-op when the id is
// unknown.
func (r *KVUserRepository) Update(ctx context.Context, user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user.Clone()
			r.persist(ctx)
			return
		}
	}
}

func (r *KVUserRepository) Remove(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = slices.DeleteFunc(r.users, func(u domain.User) bool { return u.ID == id })
	r.persist(ctx)
}

func (r *KVUserRepository) FindByID(_ context.Context, id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			return r.users[i].Clone(), true
		}
	}
	return nil, false
}

func (r *KVUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return r.users[i].Clone(), true
		}
	}
	return nil, false
}

func (r *KVUserRepository) List(_ context.Context) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	for i := range r.users {
		out[i] = *r.users[i].Clone()
	}
	return out
}

// ReplaceAll swaps the whole collection in one batch write. Used by cascade
// deletions so a multi-user correction costs a single snapshot write.
func (r *KVUserRepository) ReplaceAll(ctx context.Context, users []domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = slices.Clone(users)
	r.persist(ctx)
}

func (r *KVUserRepository) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, r.kv, storage.KeyUsers, r.users); err != nil {
		r.logger.Warn("persist users snapshot failed", zap.Error(err))
	}
}

var _ UserRepository = (*KVUserRepository)(nil)
