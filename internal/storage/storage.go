package storage

import (
	"context"
	"encoding/json"
)

// Fixed keys under which the stores persist their snapshots.
const (
	KeyUsers       = "users"
	KeyFlights     = "flights"
	KeyCurrentUser = "current_user"
)

// KV is the durability boundary: get/set/delete of JSON snapshots keyed by
// string. Writes are best-effort; callers log and continue on failure.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the snapshot stored under key into dst. On absence,
// read error or malformed data it assigns fallback instead; stored state is
// never allowed to abort startup.
func LoadJSON[T any](ctx context.Context, kv KV, key string, dst *T, fallback T) error {
	data, found, err := kv.Get(ctx, key)
	if err != nil || !found {
		*dst = fallback
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		*dst = fallback
		return err
	}
	return nil
}

// SaveJSON encodes value and writes it under key.
func SaveJSON(ctx context.Context, kv KV, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, data)
}
