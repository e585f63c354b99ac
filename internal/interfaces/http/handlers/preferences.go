// internal/interfaces/http/handlers/preferences.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/pkg/i18n"
)

// PreferencesHandler handles language and theme endpoints
type PreferencesHandler struct {
	sessionService *session.Service
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(sess *session.Service) *PreferencesHandler {
	return &PreferencesHandler{sessionService: sess}
}

// SetThemeRequest represents theme selection data
type SetThemeRequest struct {
	Theme session.Theme `json:"theme" binding:"required"`
}

// GetPreferences handles GET /preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"language": h.sessionService.Language(),
			"theme":    h.sessionService.Theme(),
		},
	})
}

// ToggleLanguage handles POST /preferences/language/toggle.
// The confirmation is phrased in the newly selected language.
func (h *PreferencesHandler) ToggleLanguage(c *gin.Context) {
	lang, err := h.sessionService.ToggleLanguage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to change language",
		})
		return
	}

	message := i18n.LanguageChangedEN
	if lang == session.LanguageFrench {
		message = i18n.LanguageChangedFR
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"language": lang,
		},
	})
}

// SetTheme handles PUT /preferences/theme
func (h *PreferencesHandler) SetTheme(c *gin.Context) {
	lang := h.sessionService.Language()

	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	if err := h.sessionService.SetTheme(req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var message i18n.Message
	switch req.Theme {
	case session.ThemeDark:
		message = i18n.ThemeDarkEnabled
	case session.ThemeAuto:
		message = i18n.ThemeAutoEnabled
	default:
		message = i18n.ThemeLightEnabled
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message.In(lang),
		"data": gin.H{
			"theme": req.Theme,
		},
	})
}
