// Package shop wires the catalog and the three managers over one store.
package shop

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/config"
	"github.com/MikeMC777/foodcart/internal/kv"
	"github.com/MikeMC777/foodcart/internal/order"
	"github.com/MikeMC777/foodcart/internal/product"
	"github.com/MikeMC777/foodcart/internal/user"
)

type Shop struct {
	Store    kv.Store
	Catalog  *product.Catalog
	Carts    *cart.Service
	Accounts *user.Service
	Orders   *order.Service
}

// New builds a shop over store. Call Recover before serving requests.
func New(store kv.Store, cfg config.Config, logger *slog.Logger) *Shop {
	if logger == nil {
		logger = slog.Default()
	}
	carts := cart.NewService(cart.NewKVRepo(store), logger)
	return &Shop{
		Store:   store,
		Catalog: product.Default(),
		Carts:   carts,
		Accounts: user.NewService(user.NewKVRepo(store), carts, user.Options{
			BcryptCost:  cfg.BcryptCost,
			AdminEmails: cfg.AdminEmails,
			Logger:      logger,
		}),
		Orders: order.NewService(order.NewKVRepo(store), carts, order.Options{Logger: logger}),
	}
}

// Open opens the configured store, builds the shop and finishes any order
// commit a previous run left behind.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Shop, error) {
	store, err := kv.Open(ctx, cfg.StoreDriver, cfg.StoreDSN())
	if err != nil {
		return nil, err
	}
	s := New(store, cfg, logger)
	if _, err := s.Orders.Recover(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return s, nil
}

// AddProduct looks id up in the catalog and adds it to the cart.
func (s *Shop) AddProduct(ctx context.Context, id string) ([]cart.Item, error) {
	p, err := s.Catalog.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.Carts.Add(ctx, p)
}

// PlaceOrder places the cart for the stored account.
func (s *Shop) PlaceOrder(ctx context.Context) (*order.Order, error) {
	u, err := s.Accounts.Current(ctx)
	if err != nil && !errors.Is(err, user.ErrNoAccount) {
		return nil, err
	}
	return s.Orders.Place(ctx, u)
}

func (s *Shop) Close() error {
	return s.Store.Close()
}
