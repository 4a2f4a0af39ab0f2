package order

import (
	"context"

	"github.com/MikeMC777/foodcart/internal/codec"
	"github.com/MikeMC777/foodcart/internal/kv"
)

type Repository interface {
	// List returns orders in insertion order.
	List(ctx context.Context) ([]Order, error)
	Append(ctx context.Context, o Order) error

	// Pending returns the order whose commit has started but not finished,
	// or nil.
	Pending(ctx context.Context) (*Order, error)
	SetPending(ctx context.Context, o Order) error
	ClearPending(ctx context.Context) error
}

type KVRepo struct{ store kv.Store }

func NewKVRepo(store kv.Store) *KVRepo { return &KVRepo{store: store} }

func (r *KVRepo) List(ctx context.Context) ([]Order, error) {
	orders, _, err := codec.Load[[]Order](ctx, r.store, codec.KeyOrders)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

func (r *KVRepo) Append(ctx context.Context, o Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	return codec.Save(ctx, r.store, codec.KeyOrders, append(orders, o))
}

func (r *KVRepo) Pending(ctx context.Context) (*Order, error) {
	o, ok, err := codec.Load[Order](ctx, r.store, codec.KeyPendingOrder)
	if err != nil || !ok {
		return nil, err
	}
	return &o, nil
}

func (r *KVRepo) SetPending(ctx context.Context, o Order) error {
	return codec.Save(ctx, r.store, codec.KeyPendingOrder, o)
}

func (r *KVRepo) ClearPending(ctx context.Context) error {
	return r.store.Remove(ctx, codec.KeyPendingOrder)
}
