// Package currency converts base-currency amounts into display strings.
// Conversion is presentation only: stored prices stay in the base currency.
package currency

import (
	"context"
	"fmt"
	"sync"

	"github.com/girlhub/storefront/internal/store"
)

// State is the selected display currency, persisted as a preference.
type State struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

type rate struct {
	symbol string
	rate   float64
}

// Exchange rates are fixed relative to the base currency (GH).
var exchangeRates = map[string]rate{
	"GH": {symbol: "₵", rate: 1},
	"NG": {symbol: "₦", rate: 105},
	"UK": {symbol: "£", rate: 0.05},
	"US": {symbol: "$", rate: 0.06},
}

type Converter struct {
	mu    sync.RWMutex
	state State
	store store.Store
}

func New(s store.Store) *Converter {
	return &Converter{
		state: State{Code: "GH", Symbol: "₵", Rate: 1},
		store: s,
	}
}

// Load restores the persisted preference. A missing or unreadable
// preference leaves the base currency selected.
func (c *Converter) Load(ctx context.Context) error {
	var saved State
	ok, err := store.GetJSON(ctx, c.store, store.KeyCurrency, &saved)
	if err != nil {
		return err
	}
	if ok {
		// Re-resolve against the table so a stale persisted rate
		// cannot override the current one.
		c.Set(ctx, saved.Code)
	}
	return nil
}

// Set switches the display currency. Unknown codes are ignored without
// changing state; the return value reports whether the code was known.
func (c *Converter) Set(ctx context.Context, code string) bool {
	r, ok := exchangeRates[code]
	if !ok {
		return false
	}

	c.mu.Lock()
	c.state = State{Code: code, Symbol: r.symbol, Rate: r.rate}
	c.mu.Unlock()

	// Persistence failures don't undo the in-memory switch.
	_ = store.SetJSON(ctx, c.store, store.KeyCurrency, c.State())
	return true
}

func (c *Converter) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Format renders a base-currency amount in the selected currency:
// rate-multiplied, two decimals, symbol prefix.
func (c *Converter) Format(amountInBase float64) string {
	s := c.State()
	return fmt.Sprintf("%s%.2f", s.Symbol, amountInBase*s.Rate)
}

// Visited reports whether the first-visit preference prompt has been
// acknowledged.
func (c *Converter) Visited(ctx context.Context) bool {
	_, ok, err := c.store.Get(ctx, store.KeyVisited)
	return err == nil && ok
}

func (c *Converter) MarkVisited(ctx context.Context) error {
	return c.store.Set(ctx, store.KeyVisited, "true")
}
