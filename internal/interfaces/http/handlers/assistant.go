// internal/interfaces/http/handlers/assistant.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/techvista/storefront/internal/domain/assistant"
)

// AssistantHandler handles AI assistant endpoints
type AssistantHandler struct {
	assistantService *assistant.Service
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(ai *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistantService: ai}
}

// AskRequest represents a text question for the assistant
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// AnalyzeImageRequest carries base64 image data, optionally as a data URL
type AnalyzeImageRequest struct {
	Image  string `json:"image" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

// Ask handles POST /assistant/ask. Upstream failures still return 200 with a
// fallback reply so the conversation keeps flowing; the error field tells the
// client what happened.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	answer, err := h.assistantService.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		logrus.WithError(err).Error("Assistant ask failed")
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"answer": assistant.FallbackAskError,
			},
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"answer": answer,
		},
	})
}

// AnalyzeImage handles POST /assistant/image
func (h *AssistantHandler) AnalyzeImage(c *gin.Context) {
	var req AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	answer, err := h.assistantService.AnalyzeImage(c.Request.Context(), req.Image, req.Prompt)
	if err != nil {
		logrus.WithError(err).Error("Assistant image analysis failed")
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"answer": assistant.FallbackImageError,
			},
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"answer": answer,
		},
	})
}
