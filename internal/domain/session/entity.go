// internal/domain/session/entity.go
package session

import "time"

// User represents the authenticated identity
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Language represents the interface language preference
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// IsValid reports whether the language is one of the known values
func (l Language) IsValid() bool {
	return l == LanguageFrench || l == LanguageEnglish
}

// Theme represents the interface theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// IsValid reports whether the theme is one of the known values
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}
