// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/config"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/interfaces/http/middleware"
	"github.com/techvista/storefront/internal/pkg/auth"
	"github.com/techvista/storefront/internal/pkg/i18n"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	sessionService *session.Service
	jwtManager     *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sess *session.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessionService: sess,
		jwtManager:     auth.NewJWTManager(cfg),
	}
}

// LoginRequest represents login form data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents registration form data
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := h.sessionService.Language()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	user, err := h.sessionService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.InvalidCredentials.In(lang),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Login failed",
		})
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	message := i18n.LoginSuccess
	if user.IsAdmin {
		message = i18n.LoginAdminSuccess
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message.In(lang),
		"data": gin.H{
			"user":  user,
			"token": token,
		},
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := h.sessionService.Language()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	user, err := h.sessionService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": i18n.CheckoutMissingFields.In(lang),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Registration failed",
		})
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.RegisterSuccess.In(lang),
		"data": gin.H{
			"user":  user,
			"token": token,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := h.sessionService.Language()

	if err := h.sessionService.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Logout failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.LogoutSuccess.In(lang),
	})
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := h.sessionService.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	// The token and the session store can drift if the store was cleared
	// out of band; the persisted identity wins.
	if userID, ok := middleware.GetUserIDFromContext(c); ok && userID != user.ID {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session no longer valid",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user":     user,
			"is_admin": h.sessionService.IsAdmin(),
		},
	})
}
