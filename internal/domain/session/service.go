// internal/domain/session/service.go
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/techvista/storefront/internal/infrastructure/storage"
)

// Persistence keys
const (
	userKey     = "user"
	languageKey = "language"
	themeKey    = "theme"
)

var (
	// ErrInvalidCredentials is returned when email or password is empty
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when registration fields are empty
	ErrMissingFields = errors.New("name, email and password are required")
)

// adminAccount is a privileged credential pair with its fixed identity
type adminAccount struct {
	email    string
	password string
	id       string
	name     string
	account  string // email on the resulting identity
}

// The two privileged pairs. Matching is exact on both values; everything
// else non-empty logs in as a regular user. This mock authentication is the
// contract of the storefront, not a placeholder to harden.
var adminAccounts = []adminAccount{
	{email: "admin", password: "motherboard", id: "admin-special", name: "Administrator", account: "admin@techvista.com"},
	{email: "admin@techvista.com", password: "admin123", id: "admin-1", name: "Admin User", account: "admin@techvista.com"},
}

// Service owns the current identity and the process-wide preferences.
// Identity and preferences are persisted independently: preferences survive
// logout. Two states exist, anonymous and authenticated; Login and Register
// move to authenticated, Logout back to anonymous.
type Service struct {
	mu       sync.RWMutex
	store    storage.Store
	current  *User
	language Language
	theme    Theme
}

// NewService creates a session service, restoring the persisted identity and
// preferences. Absent or unreadable values fall back to anonymous / fr / light.
func NewService(store storage.Store) *Service {
	s := &Service{
		store:    store,
		language: LanguageFrench,
		theme:    ThemeLight,
	}

	if value, found, err := store.Load(userKey); err == nil && found {
		var user User
		if err := json.Unmarshal([]byte(value), &user); err == nil {
			s.current = &user
		}
	}

	if value, found, err := store.Load(languageKey); err == nil && found {
		if lang := Language(value); lang.IsValid() {
			s.language = lang
		}
	}

	if value, found, err := store.Load(themeKey); err == nil && found {
		if theme := Theme(value); theme.IsValid() {
			s.theme = theme
		}
	}

	return s
}

// Login authenticates with the permissive mock scheme: the two privileged
// pairs yield administrator identities, any other non-empty pair yields a
// regular user whose name is the local part of the email.
func (s *Service) Login(email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	for _, admin := range adminAccounts {
		if email == admin.email && password == admin.password {
			user := User{
				ID:        admin.id,
				Email:     admin.account,
				Name:      admin.name,
				IsAdmin:   true,
				CreatedAt: time.Now().UTC(),
			}
			if err := s.setCurrent(user); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}

	user := User{
		ID:        fmt.Sprintf("user-%s", uuid.New().String()),
		Email:     email,
		Name:      strings.SplitN(email, "@", 2)[0],
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.setCurrent(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new non-admin identity. A pre-existing account with the
// same email is not checked for; every registration produces a distinct id.
func (s *Service) Register(name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user := User{
		ID:        fmt.Sprintf("user-%s", uuid.New().String()),
		Email:     email,
		Name:      name,
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.setCurrent(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the current identity. Preferences are untouched.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Delete(userKey); err != nil {
		return fmt.Errorf("failed to clear persisted identity: %w", err)
	}
	return nil
}

// Current returns a copy of the authenticated identity, or nil when anonymous
func (s *Service) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAdmin reports whether an identity exists and carries the admin flag
func (s *Service) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current != nil && s.current.IsAdmin
}

// Language returns the current language preference
func (s *Service) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.language
}

// ToggleLanguage flips between French and English and persists the choice
func (s *Service) ToggleLanguage() (Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.language == LanguageFrench {
		s.language = LanguageEnglish
	} else {
		s.language = LanguageFrench
	}

	if err := s.store.Save(languageKey, string(s.language)); err != nil {
		return s.language, fmt.Errorf("failed to persist language: %w", err)
	}
	return s.language, nil
}

// Theme returns the current theme preference
func (s *Service) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// SetTheme sets and persists the theme preference
func (s *Service) SetTheme(theme Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("invalid theme: %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	if err := s.store.Save(themeKey, string(theme)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}

// setCurrent persists the identity and installs it in memory. The write comes
// first: a failed save must not leave the service authenticated.
func (s *Service) setCurrent(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(userKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist identity: %w", err)
	}

	s.current = &user
	return nil
}
