// ABOUTME: Application configuration
// ABOUTME: Defaults, optional TOML file and environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/visionboard/visionboard-go/internal/download"
	"github.com/visionboard/visionboard-go/internal/gemini"
	"github.com/visionboard/visionboard-go/internal/speech"
	"github.com/visionboard/visionboard-go/internal/story"
)

// Environment variables consulted for the API key, in order
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// APIConfig holds Gemini API settings
type APIConfig struct {
	Key            string `toml:"key"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	StoryModel     string `toml:"story_model"`
	SpeechModel    string `toml:"speech_model"`
	Voice          string `toml:"voice"`
}

// Timeout returns the request timeout as a duration
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// OutputConfig holds playback and download settings
type OutputConfig struct {
	Dir      string `toml:"dir"`
	FileName string `toml:"file_name"`
	Volume   int    `toml:"volume"`
	NoAudio  bool   `toml:"no_audio"`
}

// Config is the root configuration structure
type Config struct {
	API    APIConfig    `toml:"api"`
	Output OutputConfig `toml:"output"`
	Form   story.Form   `toml:"form"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        gemini.DefaultBaseURL,
			TimeoutSeconds: int(gemini.DefaultTimeout / time.Second),
			StoryModel:     story.DefaultModel,
			SpeechModel:    speech.DefaultModel,
			Voice:          speech.DefaultVoice,
		},
		Output: OutputConfig{
			Dir:      ".",
			FileName: download.DefaultFileName,
			Volume:   100,
		},
		Form: story.DefaultForm(),
	}
}

// Load builds the configuration from defaults, then path (if non-empty), then the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	for _, name := range apiKeyEnv {
		if v := os.Getenv(name); v != "" {
			c.API.Key = v
			return
		}
	}
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return errors.New("API key is not set (set GEMINI_API_KEY or api.key)")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.Output.Volume < 0 || c.Output.Volume > 100 {
		return fmt.Errorf("output.volume must be between 0 and 100, got %d", c.Output.Volume)
	}
	if c.Output.FileName == "" {
		return errors.New("output.file_name is empty")
	}
	return nil
}
