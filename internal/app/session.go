// ABOUTME: Main application orchestration
// ABOUTME: Sequences story generation, speech playback and WAV download
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/visionboard/visionboard-go/internal/download"
	"github.com/visionboard/visionboard-go/internal/story"
	"github.com/visionboard/visionboard-go/pkg/audio"
	"github.com/visionboard/visionboard-go/pkg/audio/decode"
	"github.com/visionboard/visionboard-go/pkg/audio/encode"
	"github.com/visionboard/visionboard-go/pkg/audio/output"
)

// User-facing failure messages
const (
	MsgStoryFailed    = "Không thể tạo câu chuyện. Vui lòng thử lại."
	MsgAudioFailed    = "Không thể tạo audio. Vui lòng thử lại."
	MsgDownloadFailed = "Không thể tải audio. Vui lòng thử lại."
)

var (
	// ErrFormIncomplete is returned when a story is requested with missing fields
	ErrFormIncomplete = errors.New("goal form is incomplete")
	// ErrBusy is returned when the same step is already running
	ErrBusy = errors.New("operation already in progress")
)

// StoryGenerator produces a narrative from the goal form
type StoryGenerator interface {
	Generate(ctx context.Context, form story.Form) (string, error)
}

// SpeechSynthesizer produces a base64 PCM payload from text
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// Saver persists a downloaded blob
type Saver interface {
	Save(blob []byte, name string) (string, error)
}

// State is a snapshot of the session
type State struct {
	Form         story.Form
	Story        string
	AudioData    string // base64 PCM from the speech API
	LoadingStory bool
	LoadingAudio bool
	Err          string
	SavedPath    string
}

// HasAudio reports whether audio is available for playback or download
func (s State) HasAudio() bool {
	return s.AudioData != ""
}

// Config holds the session's collaborators
type Config struct {
	Stories       StoryGenerator
	Speech        SpeechSynthesizer
	Output        output.Output
	Saver         Saver
	FileName      string
	OnStateChange func(State)
}

// Session owns the generate story -> generate audio -> download flow
type Session struct {
	config Config
	mu     sync.Mutex
	state  State
}

// New creates a session with an initial form
func New(config Config, form story.Form) *Session {
	if config.FileName == "" {
		config.FileName = download.DefaultFileName
	}
	return &Session{
		config: config,
		state:  State{Form: form},
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetForm replaces the goal form
func (s *Session) SetForm(form story.Form) {
	s.update(func(st *State) { st.Form = form })
}

// CanGenerateStory reports whether a story request would be accepted
func (s *Session) CanGenerateStory() bool {
	st := s.Snapshot()
	return !st.LoadingStory && !st.Form.Incomplete()
}

// GenerateStory asks for a new narrative; previous story, audio and error are cleared
func (s *Session) GenerateStory(ctx context.Context) error {
	var form story.Form
	var rejected error
	s.update(func(st *State) {
		switch {
		case st.LoadingStory:
			rejected = ErrBusy
		case st.Form.Incomplete():
			rejected = ErrFormIncomplete
		default:
			st.LoadingStory = true
			st.Story = ""
			st.AudioData = ""
			st.Err = ""
			st.SavedPath = ""
			form = st.Form
		}
	})
	if rejected != nil {
		return rejected
	}

	log.Printf("Generating story for %s", form.Name)
	text, err := s.config.Stories.Generate(ctx, form)

	s.update(func(st *State) {
		st.LoadingStory = false
		if err != nil {
			st.Err = MsgStoryFailed
			return
		}
		st.Story = text
	})

	if err != nil {
		log.Printf("Story generation error: %v", err)
		return err
	}

	log.Printf("Story generated (%d chars)", len(text))
	return nil
}

// GenerateAudio synthesizes the story and starts playback without waiting for it.
// With no story it does nothing and returns a nil playback.
func (s *Session) GenerateAudio(ctx context.Context) (*output.Playback, error) {
	var text string
	var rejected error
	s.update(func(st *State) {
		switch {
		case st.Story == "":
		case st.LoadingAudio:
			rejected = ErrBusy
		default:
			st.LoadingAudio = true
			st.AudioData = ""
			st.Err = ""
			st.SavedPath = ""
			text = st.Story
		}
	})
	if rejected != nil || text == "" {
		return nil, rejected
	}

	payload, err := s.config.Speech.Synthesize(ctx, text)
	var pb *output.Playback
	if err == nil {
		pb, err = s.play(payload)
	}

	s.update(func(st *State) {
		st.LoadingAudio = false
		if payload != "" {
			st.AudioData = payload
		}
		if err != nil {
			st.Err = MsgAudioFailed
		}
	})

	if err != nil {
		log.Printf("Audio generation error: %v", err)
		return nil, err
	}
	return pb, nil
}

// Replay plays the current audio again
func (s *Session) Replay() (*output.Playback, error) {
	st := s.Snapshot()
	if !st.HasAudio() {
		return nil, nil
	}
	return s.play(st.AudioData)
}

func (s *Session) play(payload string) (*output.Playback, error) {
	buf, err := decode.PlayableBase64(payload, audio.SpeechSampleRate, audio.SpeechChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio: %w", err)
	}
	if s.config.Output == nil {
		return nil, errors.New("no audio output configured")
	}
	pb, err := s.config.Output.Play(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to start playback: %w", err)
	}
	return pb, nil
}

// Download encodes the current audio as WAV and saves it under the configured name.
// With no audio it does nothing and returns an empty path.
func (s *Session) Download() (string, error) {
	st := s.Snapshot()
	if !st.HasAudio() {
		return "", nil
	}

	path, err := s.saveWAV(st.AudioData)
	s.update(func(st *State) {
		if err != nil {
			st.Err = MsgDownloadFailed
			return
		}
		st.SavedPath = path
	})

	if err != nil {
		log.Printf("Download error: %v", err)
		return "", err
	}
	return path, nil
}

func (s *Session) saveWAV(payload string) (string, error) {
	pcm, err := decode.Base64(payload)
	if err != nil {
		return "", err
	}
	wav, err := encode.WAV(pcm, audio.SpeechSampleRate, audio.SpeechChannels)
	if err != nil {
		return "", err
	}
	if s.config.Saver == nil {
		return "", errors.New("no saver configured")
	}
	return s.config.Saver.Save(wav, s.config.FileName)
}

// SetListener replaces the state change callback
func (s *Session) SetListener(fn func(State)) {
	s.mu.Lock()
	s.config.OnStateChange = fn
	s.mu.Unlock()
}

// update mutates state under lock and notifies the listener outside it
func (s *Session) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	notify := s.config.OnStateChange
	s.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}
