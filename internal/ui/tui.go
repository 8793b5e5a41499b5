// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the goal-picture form
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/visionboard/visionboard-go/internal/story"
)

// Action is a user request forwarded to the application
type Action int

const (
	ActionGenerateStory Action = iota
	ActionGenerateAudio
	ActionReplay
	ActionDownload
)

// ActionMsg carries an action and the form as currently typed
type ActionMsg struct {
	Action Action
	Form   story.Form
}

// QuitMsg signals the user asked to leave
type QuitMsg struct{}

// Controls holds channels from the TUI to the application
type Controls struct {
	Actions chan ActionMsg
	Quit    chan QuitMsg
}

// NewControls creates a new control handler
func NewControls() *Controls {
	return &Controls{
		Actions: make(chan ActionMsg, 10),
		Quit:    make(chan QuitMsg, 1),
	}
}

// Run creates the TUI program; the caller starts it
func Run(form story.Form, controls *Controls) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(form, controls), tea.WithAltScreen())
	return p, nil
}
