// ABOUTME: Speech synthesizer backed by the TTS model
// ABOUTME: Returns the base64 raw-PCM payload for a piece of text
package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/visionboard/visionboard-go/internal/gemini"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the TTS model
	DefaultModel = "gemini-2.5-flash-preview-tts"
	// DefaultVoice is the prebuilt voice
	DefaultVoice = "Kore"
)

var (
	// ErrNoAudio is returned when the response carries no inline audio
	ErrNoAudio = errors.New("no audio data received from API")
	// ErrEmptyText is returned before any request when there is nothing to speak
	ErrEmptyText = errors.New("text to synthesize is empty")
)

// ContentGenerator is the transport the synthesizer needs
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Synthesizer converts text to a base64 audio payload
type Synthesizer struct {
	client ContentGenerator
	model  string
	voice  string
}

// NewSynthesizer creates a synthesizer; empty model or voice select the defaults
func NewSynthesizer(client ContentGenerator, model, voice string) *Synthesizer {
	if model == "" {
		model = DefaultModel
	}
	if voice == "" {
		voice = DefaultVoice
	}
	return &Synthesizer{
		client: client,
		model:  model,
		voice:  voice,
	}
}

// Synthesize returns base64-encoded mono 24kHz 16-bit PCM for text.
// Inline data arrives decoded and is re-encoded as standard base64.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}

	resp, err := s.client.GenerateContent(ctx, s.model, genai.Text(text), s.config())
	if err != nil {
		return "", fmt.Errorf("speech generation failed: %w", err)
	}

	blob := gemini.InlineData(resp)
	if blob == nil || len(blob.Data) == 0 {
		return "", ErrNoAudio
	}

	return base64.StdEncoding.EncodeToString(blob.Data), nil
}

func (s *Synthesizer) config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{gemini.ModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}
}
