// Package snapshot persists whole-store snapshots under fixed keys.
//
// Each key holds one JSON array written wholesale on every mutation of
// the store that owns the key.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	KeyProducts = "products"
	KeyCart     = "cart"
)

type Storage interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

// LoadJSON decodes the snapshot stored under key. found is false when the
// key has never been written.
func LoadJSON[T any](ctx context.Context, s Storage, key string) (items []T, found bool, err error) {
	raw, found, err := s.Load(ctx, key)
	if err != nil || !found {
		return nil, found, err
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, true, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func SaveJSON[T any](ctx context.Context, s Storage, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	return s.Save(ctx, key, raw)
}
