package cart

import (
	"context"

	"github.com/MikeMC777/foodcart/internal/codec"
	"github.com/MikeMC777/foodcart/internal/kv"
)

type Repository interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
	Delete(ctx context.Context) error
}

// KVRepo keeps the whole cart as one record.
type KVRepo struct{ store kv.Store }

func NewKVRepo(store kv.Store) *KVRepo { return &KVRepo{store: store} }

// Load returns an empty cart when no record exists.
func (r *KVRepo) Load(ctx context.Context) ([]Item, error) {
	items, _, err := codec.Load[[]Item](ctx, r.store, codec.KeyCart)
	if err != nil {
		return nil, err
	}
	return Clone(items), nil
}

func (r *KVRepo) Save(ctx context.Context, items []Item) error {
	return codec.Save(ctx, r.store, codec.KeyCart, Clone(items))
}

func (r *KVRepo) Delete(ctx context.Context) error {
	return r.store.Remove(ctx, codec.KeyCart)
}
