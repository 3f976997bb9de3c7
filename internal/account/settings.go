package account

import (
	"context"

	"github.com/girlhub/storefront/internal/store"
)

// Settings are the notification toggles from the profile page.
type Settings struct {
	EmailNotifications bool `json:"emailNotifications"`
	PromoEmails        bool `json:"promoEmails"`
	OrderUpdates       bool `json:"orderUpdates"`
	SaveHistory        bool `json:"saveHistory"`
	PersonalizedRecs   bool `json:"personalizedRecs"`
}

func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PromoEmails:        true,
		OrderUpdates:       true,
		SaveHistory:        false,
		PersonalizedRecs:   true,
	}
}

// Settings returns the persisted toggles, or the defaults when nothing
// usable is stored.
func (s *Service) Settings(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Settings{}, ErrNotAuthenticated
	}

	settings := DefaultSettings()
	ok, err := store.GetJSON(ctx, s.store, store.KeySettings, &settings)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}
	return settings, nil
}

func (s *Service) SaveSettings(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNotAuthenticated
	}
	return store.SetJSON(ctx, s.store, store.KeySettings, settings)
}
