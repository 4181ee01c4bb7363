package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/repository"
	"github.com/Domenick1991/airportsystem/internal/storage"
)

type SessionUseCase interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	Current() (*domain.User, bool)
	Refresh(ctx context.Context, user *domain.User)
}

// Service holds the single authenticated identity for the process. The
// identity is cached in the KV store so a restart resumes the session
// without re-validating credentials (trust-on-restore). The cache is a
// convenience, not a security boundary.
type Service struct {
	mu      sync.RWMutex
	users   repository.UserRepository
	kv      storage.KV
	logger  *zap.Logger
	current *domain.User
}

func NewService(ctx context.Context, users repository.UserRepository, kv storage.KV, logger *zap.Logger) *Service {
	s := &Service{users: users, kv: kv, logger: logger}
	var cached *domain.User
	if err := storage.LoadJSON(ctx, kv, storage.KeyCurrentUser, &cached, nil); err != nil {
		logger.Warn("restore cached session failed", zap.Error(err))
	}
	if cached != nil {
		s.current = cached
		logger.Info("session restored", zap.String("user_id", cached.ID))
	}
	return s
}

// Login matches email and opaque password verbatim. The failure reason is
// identical whether the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, ok := s.users.FindByEmail(ctx, email)
	if !ok || user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	s.cache(ctx, user)
	return user.Clone(), nil
}

// Register creates a regular user and logs them in immediately. Email
// uniqueness is enforced here, not in the identity store.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, exists := s.users.FindByEmail(ctx, email); exists {
		return nil, domain.ErrDuplicateEmail
	}

	user := s.users.Add(ctx, domain.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     domain.RoleUser,
	})

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	s.cache(ctx, user)
	return user.Clone(), nil
}

func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
		s.logger.Warn("clear cached session failed", zap.Error(err))
	}
}

func (s *Service) Current() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current.Clone(), true
}

// Refresh is called by the booking engine after it mutates a user record.
// Only the active identity is updated; anything else is ignored.
func (s *Service) Refresh(ctx context.Context, user *domain.User) {
	if user == nil {
		return
	}

	s.mu.Lock()
	if s.current == nil || s.current.ID != user.ID {
		s.mu.Unlock()
		return
	}
	s.current = user.Clone()
	s.mu.Unlock()

	s.cache(ctx, user)
}

func (s *Service) cache(ctx context.Context, user *domain.User) {
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyCurrentUser, user); err != nil {
		s.logger.Warn("persist cached session failed", zap.Error(err))
	}
}

var _ SessionUseCase = (*Service)(nil)
