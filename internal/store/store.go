package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Storage keys for the independently written state slices.
const (
	KeyChecklists      = "@CheckMeOut:checklists"
	KeySettings        = "@CheckMeOut:settings"
	KeyActiveChecklist = "@CheckMeOut:activeChecklist"
	KeyGroups          = "@CheckMeOut:groups"
	KeyActiveGroup     = "@CheckMeOut:activeGroup"
	KeyLastResetDate   = "@CheckMeOut:lastResetDate"
	KeySchemaVersion   = "@CheckMeOut:schemaVersion"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// KV is a persistent key-value store holding opaque serialized blobs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// GetJSON decodes the value under key into v. It reports found=false
// without error when the key is absent.
func GetJSON(ctx context.Context, kv KV, key string, v any) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}
