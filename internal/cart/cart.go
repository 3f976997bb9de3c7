// Package cart owns the in-memory cart for the running client and keeps the
// persistent store as its durable backing copy: read once on Load, written
// after every mutation.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/girlhub/storefront/internal/catalog"
	"github.com/girlhub/storefront/internal/events"
	"github.com/girlhub/storefront/internal/logging"
	"github.com/girlhub/storefront/internal/store"
)

var (
	ErrValidation       = errors.New("validation")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProductNotFound  = errors.New("product not found")
)

// Line is one cart entry: a product reference and its quantity.
// Quantity is always >= 1 in a live cart; a line that would drop to zero is
// removed instead.
type Line struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// SessionChecker answers whether a user is currently signed in. Adding to
// the cart requires that; reading and editing existing lines does not.
type SessionChecker interface {
	Authenticated(ctx context.Context) bool
}

type Service struct {
	mu       sync.Mutex
	lines    []Line
	store    store.Store
	catalog  *catalog.Catalog
	session  SessionChecker
	producer *events.Producer
}

func NewService(s store.Store, c *catalog.Catalog, session SessionChecker, producer *events.Producer) *Service {
	return &Service{
		store:    s,
		catalog:  c,
		session:  session,
		producer: producer,
	}
}

// Load replaces the in-memory cart with the persisted snapshot. Absent or
// malformed data means an empty cart. Lines that no longer resolve in the
// catalog or carry a non-positive quantity are dropped.
func (s *Service) Load(ctx context.Context) error {
	var saved []Line
	if _, err := store.GetJSON(ctx, s.store, store.KeyCart, &saved); err != nil {
		return err
	}

	lines := make([]Line, 0, len(saved))
	for _, l := range saved {
		if l.Quantity < 1 {
			continue
		}
		if _, ok := s.catalog.Lookup(l.ProductID); !ok {
			continue
		}
		lines = append(lines, l)
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return nil
}

// AddItem merges quantity into an existing line for the product or appends
// a new line, preserving append order, then persists the whole cart.
func (s *Service) AddItem(ctx context.Context, productID, quantity int) error {
	l := logging.FromContext(ctx).With("svc", "cart.add_item", "product_id", productID)

	if !s.session.Authenticated(ctx) {
		return fmt.Errorf("sign in to add items: %w", ErrNotAuthenticated)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{ProductID: productID, Quantity: quantity})
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.publish(ctx, "item_added", productID, quantity)
	l.Info("item_added", "name", product.Name, "quantity", quantity)
	return nil
}

// UpdateQuantity adjusts an existing line by delta. A missing line is a
// no-op; a result of zero or less removes the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, productID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	s.lines[idx].Quantity += delta
	if s.lines[idx].Quantity <= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
		s.publish(ctx, "item_removed", productID, 0)
	}
	return s.persist(ctx)
}

// RemoveItem drops the product's line. Absence is a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			s.publish(ctx, "item_removed", productID, 0)
			return nil
		}
	}
	return nil
}

// Clear empties the cart, both in memory and in the store.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return s.store.Remove(ctx, store.KeyCart)
}

// Lines returns a snapshot of the cart in append order.
func (s *Service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums price*quantity over all lines, in the base currency. Display
// conversion happens afterwards and never feeds back into this value.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		if p, ok := s.catalog.Lookup(l.ProductID); ok {
			total += p.Price * float64(l.Quantity)
		}
	}
	return total
}

// ItemCount sums quantities across lines, the number the cart badge shows.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	return store.SetJSON(ctx, s.store, store.KeyCart, lines)
}

func (s *Service) publish(ctx context.Context, action string, productID, quantity int) {
	event := map[string]any{
		"action":     action,
		"product_id": productID,
		"quantity":   quantity,
	}
	if err := s.producer.Publish(ctx, events.TopicCart, fmt.Sprint(productID), event); err != nil {
		logging.FromContext(ctx).Warn("cart_event_publish_failed", "error", err)
	}
}
