// Package codec names the persisted records and converts aggregates to and
// from the string values the key-value store holds.
package codec

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MikeMC777/foodcart/internal/kv"
)

// Record keys. Each is an independent top-level aggregate.
const (
	KeyUser         = "user"
	KeyCart         = "cart"
	KeyOrders       = "orders"
	KeyPendingOrder = "pendingOrder"
)

func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(b), nil
}

func Decode(s string, v any) error {
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Load reads and decodes the record at key. ok is false when the record does
// not exist. A record that cannot be decoded is reported as a storage failure.
func Load[T any](ctx context.Context, store kv.Store, key string) (v T, ok bool, err error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := Decode(raw, &v); err != nil {
		return v, false, fmt.Errorf("%w: record %q: %w", kv.ErrStorage, key, err)
	}
	return v, true, nil
}

// Save encodes v and writes it at key, replacing any previous value.
func Save(ctx context.Context, store kv.Store, key string, v any) error {
	raw, err := Encode(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
