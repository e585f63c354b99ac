// internal/domain/assistant/service.go
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/techvista/storefront/internal/config"
)

// Prompt preambles keep the assistant on TechVista topics. They are part of
// the storefront's user-visible behavior and stay in French regardless of
// the interface language.
const (
	askPreamble = "Tu es l'assistant IA de TechVista, une boutique d'électronique vendant des smartphones, ordinateurs, tablettes et accessoires.\n" +
		"Tu dois UNIQUEMENT répondre aux questions concernant les produits, les services ou le fonctionnement du site e-commerce TechVista.\n" +
		"Si la question ne concerne pas le site ou les produits vendus, réponds poliment que tu ne peux répondre qu'aux questions relatives au site TechVista et ses produits.\n\n" +
		"Question de l'utilisateur: "

	imagePreamble = "Tu es l'assistant IA de TechVista, une boutique d'électronique vendant des smartphones, ordinateurs, tablettes et accessoires.\n" +
		"Analyse cette image et donne des informations uniquement si elle montre un produit électronique ou un accessoire.\n" +
		"Si l'image ne montre pas un produit électronique ou un accessoire, indique poliment que tu ne peux analyser que les produits liés au site TechVista.\n\n"
)

// Fallback texts recorded in the conversation when no answer came back
const (
	FallbackNoAnswer   = "Désolé, je n'ai pas pu générer une réponse. Veuillez réessayer."
	FallbackNoAnalysis = "Désolé, je n'ai pas pu analyser cette image. Veuillez réessayer."
	FallbackAskError   = "Désolé, une erreur s'est produite lors de la communication avec l'IA."
	FallbackImageError = "Désolé, une erreur s'est produite lors de l'analyse de l'image."
)

// Service is a stateless client for the hosted generative-language endpoint.
// One request yields one textual response; no retry, no streaming.
type Service struct {
	config     *config.Config
	httpClient *http.Client
}

// NewService creates a new assistant service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Assistant.RequestTimeout,
		},
	}
}

// Wire types for the generateContent API

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends a text prompt wrapped in the storefront preamble and returns the
// assistant's reply. An answer-less but successful response yields the
// no-answer fallback text rather than an error.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	parts := []part{{Text: askPreamble + prompt}}
	return s.generate(ctx, parts, FallbackNoAnswer)
}

// AnalyzeImage sends a prompt plus inline base64 JPEG data. Data-URL
// prefixes ("data:image/jpeg;base64,...") are stripped before sending.
func (s *Service) AnalyzeImage(ctx context.Context, imageData, prompt string) (string, error) {
	if strings.HasPrefix(imageData, "data:") {
		if idx := strings.Index(imageData, ","); idx >= 0 {
			imageData = imageData[idx+1:]
		}
	}

	parts := []part{
		{Text: imagePreamble + prompt},
		{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageData}},
	}
	return s.generate(ctx, parts, FallbackNoAnalysis)
}

func (s *Service) generate(ctx context.Context, parts []part, fallback string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: parts}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(s.config.Assistant.BaseURL, "/"),
		s.config.Assistant.Model,
		s.config.Assistant.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant API error: %s", resp.Status)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 ||
		result.Candidates[0].Content.Parts[0].Text == "" {
		return fallback, nil
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
