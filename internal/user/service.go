// Package user manages the device's account: registration, login and the
// shipping profile used at checkout.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/MikeMC777/foodcart/internal/validate"
)

var (
	ErrNotRegistered      = errors.New("no account registered on this device")
	ErrNoAccount          = errors.New("no account to update")
	ErrInvalidCredentials = errors.New("wrong account or password")
)

// CartClearer drops the session cart on logout.
type CartClearer interface {
	Clear(ctx context.Context) error
}

type Options struct {
	BcryptCost  int
	AdminEmails []string
	Logger      *slog.Logger
}

type Service struct {
	repo   Repository
	carts  CartClearer
	cost   int
	admins map[string]struct{}
	log    *slog.Logger

	mu sync.Mutex // serialises writes to the user record
}

func NewService(repo Repository, carts CartClearer, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	admins := make(map[string]struct{}, len(opts.AdminEmails))
	for _, e := range opts.AdminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &Service{
		repo:   repo,
		carts:  carts,
		cost:   opts.BcryptCost,
		admins: admins,
		log:    logger.With("component", "user"),
	}
}

// Register stores a new account, replacing any account already on the
// device. Phone and address start empty.
func (s *Service) Register(ctx context.Context, account, email, password, confirm string) (*User, error) {
	if err := validate.Required(
		"account", account,
		"email", email,
		"password", password,
		"confirmPassword", confirm,
	); err != nil {
		return nil, err
	}
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if password != confirm {
		return nil, validate.New("confirmPassword", "passwords do not match")
	}
	if len(password) > 72 {
		return nil, validate.New("password", "must be at most 72 bytes")
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{Account: account, Email: email, PasswordHash: hash}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Put(ctx, u); err != nil {
		s.log.Error("save user", "op", "register", "err", err)
		return nil, err
	}
	s.log.Info("account registered", "account", account)
	return u, nil
}

// Login checks identifier (account or email, case-sensitive) and password
// against the stored account.
func (s *Service) Login(ctx context.Context, identifier, password string) (*User, error) {
	if err := validate.Required("account", identifier, "password", password); err != nil {
		return nil, err
	}
	u, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotRegistered
	}
	if err != nil {
		return nil, err
	}
	if identifier != u.Account && identifier != u.Email {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Current returns the stored account.
func (s *Service) Current(ctx context.Context) (*User, error) {
	u, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoAccount
	}
	return u, err
}

// UpdateShippingInfo sets phone and address on the stored account, keeping
// its credentials.
func (s *Service) UpdateShippingInfo(ctx context.Context, phone, address string) (*User, error) {
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if err := validate.Required("phone", phone, "address", address); err != nil {
		return nil, err
	}
	if err := validate.Phone(phone); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	u.Phone = phone
	u.Address = address
	if err := s.repo.Put(ctx, u); err != nil {
		s.log.Error("save user", "op", "shipping", "err", err)
		return nil, err
	}
	return u, nil
}

// Logout ends the session by dropping the cart. The account stays.
func (s *Service) Logout(ctx context.Context) error {
	return s.carts.Clear(ctx)
}

// Rank is Gold for configured admin addresses, Bronze otherwise.
func (s *Service) Rank(u *User) Rank {
	if u == nil {
		return RankBronze
	}
	for _, id := range []string{u.Account, u.Email} {
		if _, ok := s.admins[strings.ToLower(id)]; ok {
			return RankGold
		}
	}
	return RankBronze
}
