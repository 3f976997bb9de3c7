package account

import (
	"context"
	"fmt"
	"time"

	"github.com/girlhub/storefront/internal/store"
)

// Address is one saved delivery address. At most one address carries
// IsDefault at a time.
type Address struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Region    string `json:"region"`
	IsDefault bool   `json:"isDefault"`
}

// Addresses lists the saved addresses in creation order.
func (s *Service) Addresses(ctx context.Context) ([]Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, ErrNotAuthenticated
	}
	return s.loadAddresses(ctx)
}

// AddAddress appends a new address. The first address saved becomes the
// default automatically; any IsDefault on the input is ignored.
func (s *Service) AddAddress(ctx context.Context, a Address) (*Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNotAuthenticated
	}
	if a.Label == "" || a.Name == "" || a.Phone == "" || a.Street == "" || a.City == "" || a.Region == "" {
		return nil, fmt.Errorf("all address fields are required: %w", ErrValidation)
	}

	addrs, err := s.loadAddresses(ctx)
	if err != nil {
		return nil, err
	}

	a.ID = time.Now().UnixMilli()
	for addressIDTaken(addrs, a.ID) {
		a.ID++
	}
	a.IsDefault = len(addrs) == 0

	addrs = append(addrs, a)
	if err := s.saveAddresses(ctx, addrs); err != nil {
		return nil, err
	}
	return &a, nil
}

// SetDefaultAddress marks exactly one address as default. Unknown ids leave
// the configuration untouched.
func (s *Service) SetDefaultAddress(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNotAuthenticated
	}

	addrs, err := s.loadAddresses(ctx)
	if err != nil {
		return err
	}
	if !addressIDTaken(addrs, id) {
		return fmt.Errorf("address %d: %w", id, ErrNotFound)
	}
	for i := range addrs {
		addrs[i].IsDefault = addrs[i].ID == id
	}
	return s.saveAddresses(ctx, addrs)
}

// DeleteAddress removes the address. Deleting the default does not promote
// another address; zero defaults is a reachable, accepted state.
func (s *Service) DeleteAddress(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNotAuthenticated
	}

	addrs, err := s.loadAddresses(ctx)
	if err != nil {
		return err
	}
	if !addressIDTaken(addrs, id) {
		return fmt.Errorf("address %d: %w", id, ErrNotFound)
	}
	kept := addrs[:0]
	for _, a := range addrs {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return s.saveAddresses(ctx, kept)
}

func (s *Service) loadAddresses(ctx context.Context) ([]Address, error) {
	var addrs []Address
	if _, err := store.GetJSON(ctx, s.store, store.KeyAddresses, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

func (s *Service) saveAddresses(ctx context.Context, addrs []Address) error {
	if addrs == nil {
		addrs = []Address{}
	}
	return store.SetJSON(ctx, s.store, store.KeyAddresses, addrs)
}

func addressIDTaken(addrs []Address, id int64) bool {
	for _, a := range addrs {
		if a.ID == id {
			return true
		}
	}
	return false
}
