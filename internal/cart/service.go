// Package cart manages the shopping cart aggregate.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MikeMC777/foodcart/internal/product"
	"github.com/MikeMC777/foodcart/internal/validate"
)

// ErrBusy is returned to an add that overlaps one still in flight. Nothing
// was changed; callers treat it as a no-op.
var ErrBusy = errors.New("cart: add already in progress")

type Service struct {
	repo Repository
	log  *slog.Logger

	mu     sync.Mutex // serialises every read-modify-write of the cart
	adding atomic.Bool
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, log: logger.With("component", "cart")}
}

// Items returns the current cart in insertion order.
func (s *Service) Items(ctx context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx)
}

// Add puts one unit of p in the cart: a new line with quantity 1, or +1 on
// the existing line with the same id. It returns the updated cart.
func (s *Service) Add(ctx context.Context, p product.Product) ([]Item, error) {
	id := normalizeID(p.ID)
	if id == "" {
		return nil, validate.New("id", "is required")
	}
	if p.Price < 0 {
		return nil, validate.New("price", "must not be negative")
	}

	if !s.adding.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.adding.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("load cart", "err", err)
		return nil, err
	}

	found := false
	for i := range items {
		if normalizeID(items[i].ID) == id {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, Item{
			ID:        id,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
			ImageName: p.ImageName,
		})
	}

	if err := s.repo.Save(ctx, items); err != nil {
		s.log.Error("save cart", "op", "add", "id", id, "err", err)
		return nil, err
	}
	s.log.Debug("item added", "id", id, "lines", len(items))
	return items, nil
}

// Remove drops the line with the given id. An absent id leaves the cart as
// it was.
func (s *Service) Remove(ctx context.Context, id string) ([]Item, error) {
	id = normalizeID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	n := len(items)
	kept := items[:0]
	for _, it := range items {
		if normalizeID(it.ID) != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == n {
		return kept, nil
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		s.log.Error("save cart", "op", "remove", "id", id, "err", err)
		return nil, err
	}
	return kept, nil
}

// Clear deletes the cart record.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(ctx)
}

// Checkout hands the current cart to fn while holding the cart lock and
// deletes the cart once fn succeeds. If fn fails the cart is untouched.
func (s *Service) Checkout(ctx context.Context, fn func(items []Item) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(Clone(items)); err != nil {
		return err
	}
	if err := s.clear(ctx); err != nil {
		return fmt.Errorf("clear cart after checkout: %w", err)
	}
	return nil
}

// ClearIf deletes the cart only when keep reports false for its current
// contents. It reports whether the cart was deleted.
func (s *Service) ClearIf(ctx context.Context, keep func(items []Item) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	if keep(Clone(items)) {
		return false, nil
	}
	if err := s.clear(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		s.log.Error("delete cart", "err", err)
		return err
	}
	return nil
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
