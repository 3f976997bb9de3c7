// Package account manages users, the current session, addresses and
// profile settings on top of the persistent store.
package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/girlhub/storefront/internal/events"
	"github.com/girlhub/storefront/internal/hash"
	"github.com/girlhub/storefront/internal/logging"
	"github.com/girlhub/storefront/internal/store"
	"github.com/girlhub/storefront/internal/tokens"
)

var (
	ErrValidation         = errors.New("validation")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// deleteConfirmation is the literal a user must type to delete the account.
const deleteConfirmation = "DELETE"

type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Phone     string     `json:"phone,omitempty"`
	Birthday  string     `json:"birthday,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Session is the record of the currently authenticated user.
type Session struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Profile is the subset of user fields a profile edit may overwrite.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
}

type Config struct {
	// SessionSecret signs the persisted session marker.
	SessionSecret []byte
	// SessionTTL bounds a plain login, RememberTTL a remember-me login.
	SessionTTL  time.Duration
	RememberTTL time.Duration
	// NormalizeEmails switches email matching to case-insensitive. Off by
	// default: the original matched emails byte for byte.
	NormalizeEmails bool
}

// CartClearer detaches account deletion from the cart package; the wired
// cart service satisfies it.
type CartClearer interface {
	Clear(ctx context.Context) error
}

type Service struct {
	mu       sync.Mutex
	store    store.Store
	hasher   hash.Hasher
	cfg      Config
	session  *Session
	cart     CartClearer
	producer *events.Producer
}

func NewService(s store.Store, h hash.Hasher, cfg Config, producer *events.Producer) *Service {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.RememberTTL == 0 {
		cfg.RememberTTL = 7 * 24 * time.Hour
	}
	return &Service{store: s, hasher: h, cfg: cfg, producer: producer}
}

// AttachCart registers the cart to clear on account deletion.
func (s *Service) AttachCart(c CartClearer) { s.cart = c }

// LoadSession restores the persisted session marker. A marker that fails
// signature or expiry checks is discarded silently.
func (s *Service) LoadSession(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, store.KeySession)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	claims, err := tokens.SessionClaimsFromToken(raw, s.cfg.SessionSecret)
	if err != nil {
		logging.FromContext(ctx).Warn("stale_session_discarded", "error", err)
		return s.store.Remove(ctx, store.KeySession)
	}

	s.mu.Lock()
	s.session = &Session{
		Name:       claims.Name,
		Email:      claims.Subject,
		LoggedInAt: claims.IssuedAt.Time,
	}
	s.mu.Unlock()
	return nil
}

// Authenticated implements the session check other packages depend on.
func (s *Service) Authenticated(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// CurrentSession returns the active session, if any.
func (s *Service) CurrentSession() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Signup validates in the order the original form did and reports the first
// violated rule. On success the user is appended and a session established;
// a failed signup writes nothing.
func (s *Service) Signup(ctx context.Context, name, email, password, confirm string, termsAccepted bool) (*User, error) {
	l := logging.FromContext(ctx).With("svc", "account.signup")

	if name == "" || email == "" || password == "" || confirm == "" {
		return nil, fmt.Errorf("all fields are required: %w", ErrValidation)
	}
	if !termsAccepted {
		return nil, fmt.Errorf("terms must be accepted: %w", ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("passwords do not match: %w", ErrValidation)
	}
	if !validPassword(password) {
		return nil, fmt.Errorf("password needs 8+ characters, an uppercase letter and a digit: %w", ErrValidation)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("invalid email address: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if s.emailEqual(u.Email, email) {
			return nil, fmt.Errorf("%s: %w", email, ErrDuplicateEmail)
		}
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := User{
		ID:        time.Now().UnixMilli(),
		Name:      name,
		Email:     email,
		Password:  stored,
		CreatedAt: time.Now().UTC(),
	}
	users = append(users, user)
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	if err := s.establishSession(ctx, user, s.cfg.SessionTTL); err != nil {
		return nil, err
	}

	s.publish(ctx, "user_registered", user.Email)
	l.Info("signup_success", "email", user.Email)
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*User, error) {
	l := logging.FromContext(ctx).With("svc", "account.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	var user *User
	for i := range users {
		if s.emailEqual(users[i].Email, email) && s.hasher.Check(users[i].Password, password) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		l.Warn("login_failed", "status", 422)
		return nil, ErrInvalidCredentials
	}

	ttl := s.cfg.SessionTTL
	if remember {
		ttl = s.cfg.RememberTTL
		if err := s.store.Set(ctx, store.KeyRemember, "true"); err != nil {
			return nil, err
		}
	}
	if err := s.establishSession(ctx, *user, ttl); err != nil {
		return nil, err
	}

	l.Info("login_success", "email", user.Email)
	return user, nil
}

// Logout clears the session and the remember flag.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	if err := s.store.Remove(ctx, store.KeySession); err != nil {
		return err
	}
	return s.store.Remove(ctx, store.KeyRemember)
}

// UpdateProfile overwrites the mutable fields on both the session record
// and the stored user. The user is matched by the session's prior email, so
// the email itself can change in one step.
func (s *Service) UpdateProfile(ctx context.Context, p Profile) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNotAuthenticated
	}
	if p.Name == "" || p.Email == "" {
		return nil, fmt.Errorf("name and email are required: %w", ErrValidation)
	}
	if !validEmail(p.Email) {
		return nil, fmt.Errorf("invalid email address: %w", ErrValidation)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	idx := s.findUser(users, s.session.Email)
	if idx == -1 {
		return nil, fmt.Errorf("user %s: %w", s.session.Email, ErrNotFound)
	}

	now := time.Now().UTC()
	users[idx].Name = p.Name
	users[idx].Email = p.Email
	users[idx].Phone = p.Phone
	users[idx].Birthday = p.Birthday
	users[idx].UpdatedAt = &now
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	if err := s.establishSession(ctx, users[idx], s.cfg.SessionTTL); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("profile_updated", "email", users[idx].Email)
	u := users[idx]
	return &u, nil
}

// ChangePassword rewrites the stored password only; the session stays as is.
func (s *Service) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNotAuthenticated
	}
	if newPassword != confirm {
		return fmt.Errorf("new passwords do not match: %w", ErrValidation)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	idx := s.findUser(users, s.session.Email)
	if idx == -1 || !s.hasher.Check(users[idx].Password, current) {
		return ErrInvalidCredentials
	}

	stored, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	users[idx].Password = stored
	return s.saveUsers(ctx, users)
}

// DeleteAccount removes the user and clears session, cart and remember
// flag. Saved addresses stay behind; the original never deleted them.
func (s *Service) DeleteAccount(ctx context.Context, confirmation string) error {
	l := logging.FromContext(ctx).With("svc", "account.delete")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNotAuthenticated
	}
	if confirmation != deleteConfirmation {
		return fmt.Errorf("type %q to confirm deletion: %w", deleteConfirmation, ErrValidation)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	email := s.session.Email
	kept := users[:0]
	for _, u := range users {
		if !s.emailEqual(u.Email, email) {
			kept = append(kept, u)
		}
	}
	if err := s.saveUsers(ctx, kept); err != nil {
		return err
	}

	s.session = nil
	if err := s.store.Remove(ctx, store.KeySession); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, store.KeyRemember); err != nil {
		return err
	}
	if s.cart != nil {
		if err := s.cart.Clear(ctx); err != nil {
			return err
		}
	} else if err := s.store.Remove(ctx, store.KeyCart); err != nil {
		return err
	}

	s.publish(ctx, "user_deleted", email)
	l.Info("account_deleted", "email", email)
	return nil
}

// RequestPasswordReset only checks that the address belongs to an account;
// no mail leaves the system.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is required: %w", ErrValidation)
	}
	if !validEmail(email) {
		return fmt.Errorf("invalid email address: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	if s.findUser(users, email) == -1 {
		return fmt.Errorf("no account for %s: %w", email, ErrNotFound)
	}
	logging.FromContext(ctx).Info("password_reset_requested", "email", email)
	return nil
}

// establishSession signs and persists the marker. Callers hold s.mu.
func (s *Service) establishSession(ctx context.Context, u User, ttl time.Duration) error {
	token, err := tokens.NewSessionToken(s.cfg.SessionSecret, u.Name, u.Email, ttl)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, store.KeySession, token); err != nil {
		return err
	}
	s.session = &Session{Name: u.Name, Email: u.Email, LoggedInAt: time.Now().UTC()}
	return nil
}

func (s *Service) loadUsers(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := store.GetJSON(ctx, s.store, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) saveUsers(ctx context.Context, users []User) error {
	if users == nil {
		users = []User{}
	}
	return store.SetJSON(ctx, s.store, store.KeyUsers, users)
}

func (s *Service) findUser(users []User, email string) int {
	for i := range users {
		if s.emailEqual(users[i].Email, email) {
			return i
		}
	}
	return -1
}

func (s *Service) publish(ctx context.Context, action, email string) {
	event := map[string]any{"action": action, "email": email}
	if err := s.producer.Publish(ctx, events.TopicUser, email, event); err != nil {
		logging.FromContext(ctx).Warn("user_event_publish_failed", "error", err)
	}
}
