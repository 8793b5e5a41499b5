// ABOUTME: Story generator backed by the text model
// ABOUTME: Sends the rendered prompt and appends the mandatory footer
package story

import (
	"context"
	"errors"
	"fmt"

	"github.com/visionboard/visionboard-go/internal/gemini"
	"google.golang.org/genai"
)

// DefaultModel is the text model used for the narrative
const DefaultModel = "gemini-2.5-pro"

// ErrEmptyStory is returned when the model produces no text
var ErrEmptyStory = errors.New("no story text received from API")

// ContentGenerator is the transport the generator needs
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator turns a Form into a narrative
type Generator struct {
	client ContentGenerator
	model  string
}

// NewGenerator creates a generator; an empty model selects DefaultModel
func NewGenerator(client ContentGenerator, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client: client,
		model:  model,
	}
}

// Generate returns the model's story with Footer appended
func (g *Generator) Generate(ctx context.Context, form Form) (string, error) {
	resp, err := g.client.GenerateContent(ctx, g.model, genai.Text(Prompt(form)), nil)
	if err != nil {
		return "", fmt.Errorf("story generation failed: %w", err)
	}

	text := gemini.Text(resp)
	if text == "" {
		return "", ErrEmptyStory
	}

	return text + Footer, nil
}
