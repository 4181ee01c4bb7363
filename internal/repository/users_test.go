package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/storage"
)

func TestUserRepository_Add(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(ctx, storage.NewMemory(), zap.NewNop(), nil)

	user := repo.Add(ctx, domain.User{Name: "Ali Khan", Email: "ali@pasi.com", Password: "password", Role: domain.RoleUser})

	assert.NotEmpty(t, user.ID)
	assert.NotNil(t, user.BookedTickets)
	assert.Empty(t, user.BookedTickets)

	stored, ok := repo.FindByID(ctx, user.ID)
	require.True(t, ok)
	assert.Equal(t, "ali@pasi.com", stored.Email)
}

func TestUserRepository_Update_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(ctx, storage.NewMemory(), zap.NewNop(), nil)

	user := repo.Add(ctx, domain.User{Name: "Ali Khan", Email: "ali@pasi.com"})

	repo.Update(ctx, domain.User{ID: "missing", Name: "Ghost"})

	assert.Len(t, repo.List(ctx), 1)
	stored, _ := repo.FindByID(ctx, user.ID)
	assert.Equal(t, "Ali Khan", stored.Name)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(ctx, storage.NewMemory(), zap.NewNop(), nil)

	user := repo.Add(ctx, domain.User{Name: "Ali Khan", Email: "ali@pasi.com"})
	user.Name = "Ali K."
	repo.Update(ctx, *user)

	stored, ok := repo.FindByID(ctx, user.ID)
	require.True(t, ok)
	assert.Equal(t, "Ali K.", stored.Name)
}

func TestUserRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(ctx, storage.NewMemory(), zap.NewNop(), nil)

	user := repo.Add(ctx, domain.User{Name: "Ali Khan", Email: "ali@pasi.com"})
	repo.Remove(ctx, user.ID)

	_, ok := repo.FindByID(ctx, user.ID)
	assert.False(t, ok)
	assert.Empty(t, repo.List(ctx))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(ctx, storage.NewMemory(), zap.NewNop(), DefaultUsers())

	found, ok := repo.FindByEmail(ctx, "admin@pasi.com")
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, found.Role)

	_, ok = repo.FindByEmail(ctx, "nobody@pasi.com")
	assert.False(t, ok)
}

func TestUserRepository_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	repo := NewUserRepository(ctx, kv, zap.NewNop(), nil)
	repo.Add(ctx, domain.User{Name: "Ali Khan", Email: "ali@pasi.com", Password: "password", Role: domain.RoleUser})
	repo.Add(ctx, domain.User{Name: "Sara Shah", Email: "sara@pasi.com", Password: "secret", Role: domain.RoleAdmin})

	restored := NewUserRepository(ctx, kv, zap.NewNop(), nil)

	assert.Equal(t, repo.List(ctx), restored.List(ctx))
}

func TestUserRepository_SeedsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	repo := NewUserRepository(ctx, kv, zap.NewNop(), DefaultUsers())

	assert.Len(t, repo.List(ctx), len(DefaultUsers()))

	// The seed itself is persisted, so a restart restores it rather than
	// re-seeding.
	_, found, err := kv.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUserRepository_MalformedSnapshotFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, storage.KeyUsers, []byte("{not json")))

	repo := NewUserRepository(ctx, kv, zap.NewNop(), DefaultUsers())

	assert.Len(t, repo.List(ctx), len(DefaultUsers()))
}

func TestUserRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(ctx, storage.NewMemory(), zap.NewNop(), nil)

	user := repo.Add(ctx, domain.User{Name: "Ali Khan", Email: "ali@pasi.com"})

	list := repo.List(ctx)
	list[0].BookedTickets = append(list[0].BookedTickets, "f001")

	stored, _ := repo.FindByID(ctx, user.ID)
	assert.Empty(t, stored.BookedTickets, "callers must not mutate store state")
}
