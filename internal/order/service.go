// Package order places orders from the cart and keeps the order history.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/user"
)

var (
	ErrMissingShippingInfo = errors.New("customer phone and address are required")
	ErrEmptyCart           = errors.New("cart is empty")
)

type Options struct {
	Logger *slog.Logger
	NewID  func() string
	Now    func() time.Time
}

type Service struct {
	repo  Repository
	carts Carts
	log   *slog.Logger
	newID func() string
	now   func() time.Time

	mu sync.Mutex // serialises writes to the order history
	// settled is a fully committed order whose marker could not be removed.
	settled string
}

func NewService(repo Repository, carts Carts, opts Options) *Service {
	s := &Service{
		repo:  repo,
		carts: carts,
		log:   opts.Logger,
		newID: opts.NewID,
		now:   opts.Now,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "order")
	if s.newID == nil {
		s.newID = NewID
	}
	if s.now == nil {
		s.now = now
	}
	return s
}

// Place turns the cart into an order for customer and empties the cart.
//
// The commit spans two records, so it is bracketed by a pending marker:
// marker written, order appended, cart cleared, marker removed. Once the
// order is appended the placement has succeeded; a cart that could not be
// cleared is left to the next Place or to Recover, which finish the commit
// without recording the order twice.
//
// If an unfinished commit for the same cart contents is found, it is
// completed and its order returned instead of placing a new one.
func (s *Service) Place(ctx context.Context, customer *user.User) (*Order, error) {
	if customer == nil || !customer.HasShippingInfo() {
		return nil, ErrMissingShippingInfo
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.Pending(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil && p.ID == s.settled {
		if err := s.repo.ClearPending(ctx); err != nil {
			return nil, err
		}
		s.settled = ""
	} else if p != nil {
		cleared, err := s.finishPending(ctx, p)
		if err != nil {
			s.log.Error("finish pending order", "order", p.ID, "err", err)
			return nil, err
		}
		if cleared {
			s.log.Info("completed pending order on retry", "order", p.ID)
			return p, nil
		}
	}

	var placed Order
	err = s.carts.Checkout(ctx, func(items []cart.Item) error {
		if len(items) == 0 {
			return ErrEmptyCart
		}
		o := Order{
			ID:       s.newID(),
			Customer: customer.Profile(),
			Items:    items,
			Total:    cart.Total(items),
			PlacedAt: s.now(),
		}
		if err := s.repo.SetPending(ctx, o); err != nil {
			return fmt.Errorf("mark pending order: %w", err)
		}
		if err := s.repo.Append(ctx, o); err != nil {
			if cerr := s.repo.ClearPending(ctx); cerr != nil {
				s.log.Error("drop pending marker after failed append", "order", o.ID, "err", cerr)
			}
			return fmt.Errorf("append order: %w", err)
		}
		placed = o
		return nil
	})
	if err != nil && placed.ID == "" {
		if !errors.Is(err, ErrEmptyCart) {
			s.log.Error("place order", "err", err)
		}
		return nil, err
	}
	if err != nil {
		// Recorded but the cart is still full; the marker stays so the
		// clear is finished later.
		s.log.Warn("order placed, cart not cleared", "order", placed.ID, "err", err)
		return &placed, nil
	}

	if err := s.repo.ClearPending(ctx); err != nil {
		s.log.Warn("clear pending marker", "order", placed.ID, "err", err)
		s.settled = placed.ID
	}
	s.log.Info("order placed", "order", placed.ID, "items", len(placed.Items), "total", placed.Total)
	return &placed, nil
}

// List returns the order history newest first. Orders placed at the same
// instant keep their insertion order.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})
	return orders, nil
}

// Recover completes an order commit interrupted by a crash: the pending
// order is appended if it is missing, the cart is cleared if it still holds
// exactly that order's items, and the marker is removed. It reports whether
// there was anything to recover.
func (s *Service) Recover(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.Pending(ctx)
	if err != nil || p == nil {
		return false, err
	}
	cleared, err := s.finishPending(ctx, p)
	if err != nil {
		return false, err
	}
	if cleared {
		s.log.Info("cleared cart of recovered order", "order", p.ID)
	}
	return true, nil
}

// finishPending brings p to the committed state and removes the marker. It
// reports whether the cart held p's items and was cleared. Callers hold mu.
func (s *Service) finishPending(ctx context.Context, p *Order) (bool, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	if !contains(orders, p.ID) {
		if err := s.repo.Append(ctx, *p); err != nil {
			return false, fmt.Errorf("recover order %s: %w", p.ID, err)
		}
		s.log.Info("recovered pending order", "order", p.ID)
	}

	cleared, err := s.carts.ClearIf(ctx, func(items []cart.Item) bool {
		return len(items) == 0 || !sameItems(items, p.Items)
	})
	if err != nil {
		return false, fmt.Errorf("recover order %s: %w", p.ID, err)
	}

	if err := s.repo.ClearPending(ctx); err != nil {
		return false, fmt.Errorf("recover order %s: %w", p.ID, err)
	}
	return cleared, nil
}

func contains(orders []Order, id string) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

func sameItems(a, b []cart.Item) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
