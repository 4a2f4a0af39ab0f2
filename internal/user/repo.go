package user

import (
	"context"
	"errors"

	"github.com/MikeMC777/foodcart/internal/codec"
	"github.com/MikeMC777/foodcart/internal/kv"
)

var (
	ErrNotFound = errors.New("user not found")
)

type Repository interface {
	Get(ctx context.Context) (*User, error)
	// Put replaces the stored user, whoever it was.
	Put(ctx context.Context, u *User) error
}

type KVRepo struct{ store kv.Store }

func NewKVRepo(store kv.Store) *KVRepo { return &KVRepo{store: store} }

func (r *KVRepo) Get(ctx context.Context) (*User, error) {
	u, ok, err := codec.Load[User](ctx, r.store, codec.KeyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *KVRepo) Put(ctx context.Context, u *User) error {
	return codec.Save(ctx, r.store, codec.KeyUser, u)
}
