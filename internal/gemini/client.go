// ABOUTME: Thin wrapper over the Gemini SDK generateContent call
// ABOUTME: Shared transport for story text and speech audio generation
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const (
	// DefaultBaseURL is the public Generative Language API root
	DefaultBaseURL = "https://generativelanguage.googleapis.com/"
	// DefaultTimeout bounds a single generateContent call
	DefaultTimeout = 120 * time.Second
)

// ModalityAudio requests audio output
const ModalityAudio = "AUDIO"

// ErrMissingAPIKey is returned when the client is built without a key
var ErrMissingAPIKey = errors.New("gemini API key is not set")

// Config holds client settings
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls models.generateContent and logs each call under a request id
type Client struct {
	models *genai.Models
}

// NewClient creates a new API client
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{models: client.Models}, nil
}

// GenerateContent sends contents to model
func (c *Client) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if model == "" {
		return nil, errors.New("model name is empty")
	}

	requestID := uuid.New().String()
	start := time.Now()
	log.Printf("[%s] generateContent model=%s", requestID, model)

	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		log.Printf("[%s] generateContent failed after %v: %v", requestID, time.Since(start), err)
		return nil, err
	}

	log.Printf("[%s] generateContent ok in %v (%d candidates)", requestID, time.Since(start), len(resp.Candidates))
	return resp, nil
}

// InlineData returns the first part's inline data of the first candidate, or nil
func InlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return nil
	}
	return content.Parts[0].InlineData
}

// Text concatenates the text parts of the first candidate
func Text(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
