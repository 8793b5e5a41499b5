// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests form editing, key actions and state rendering
package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/visionboard/visionboard-go/internal/app"
	"github.com/visionboard/visionboard-go/internal/story"
)

func completeForm() story.Form {
	form := story.DefaultForm()
	form.Date = "2025-11-01"
	return form
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+g":
		msg = tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+a":
		msg = tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+d":
		msg = tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewModel(t *testing.T) {
	form := completeForm()
	model := NewModel(form, nil)

	if model.focus != 0 {
		t.Errorf("expected focus on first field, got %d", model.focus)
	}
	if model.Form() != form {
		t.Errorf("form round trip mismatch: %+v", model.Form())
	}
	if model.values[amountField] != "30000000" {
		t.Errorf("unexpected amount text %q", model.values[amountField])
	}
}

func TestFocusNavigation(t *testing.T) {
	model := NewModel(completeForm(), nil)

	model = press(model, "tab")
	if model.focus != 1 {
		t.Errorf("expected focus 1, got %d", model.focus)
	}

	model = press(model, "shift+tab")
	model = press(model, "shift+tab")
	if model.focus != len(fields)-1 {
		t.Errorf("expected focus to wrap to last field, got %d", model.focus)
	}
}

func TestEditing(t *testing.T) {
	model := NewModel(story.Form{}, nil)

	model = press(model, "2025")
	model = press(model, "x")
	model = press(model, "backspace")
	if model.values[0] != "2025" {
		t.Errorf("unexpected date text %q", model.values[0])
	}

	for i := 0; i < amountField; i++ {
		model = press(model, "tab")
	}
	model = press(model, "12a")
	model = press(model, "500")
	if model.Form().Amount != 500 {
		t.Errorf("numeric field should reject non-digits, got %d", model.Form().Amount)
	}
}

func TestGenerateStoryAction(t *testing.T) {
	controls := NewControls()

	model := NewModel(story.DefaultForm(), controls)
	press(model, "ctrl+g")
	select {
	case <-controls.Actions:
		t.Fatal("incomplete form should not send an action")
	default:
	}

	model = NewModel(completeForm(), controls)
	press(model, "ctrl+g")
	select {
	case msg := <-controls.Actions:
		if msg.Action != ActionGenerateStory || msg.Form.Date != "2025-11-01" {
			t.Errorf("unexpected action %+v", msg)
		}
	default:
		t.Fatal("expected generate action")
	}
}

func TestAudioActionsNeedState(t *testing.T) {
	controls := NewControls()
	model := NewModel(completeForm(), controls)

	press(model, "ctrl+a")
	press(model, "ctrl+d")
	if len(controls.Actions) != 0 {
		t.Fatal("no actions expected without story or audio")
	}

	next, _ := model.Update(StateMsg{State: app.State{Story: "s", AudioData: "AAA="}})
	model = next.(Model)
	press(model, "ctrl+a")
	press(model, "ctrl+d")

	if got := (<-controls.Actions).Action; got != ActionGenerateAudio {
		t.Errorf("expected audio action, got %v", got)
	}
	if got := (<-controls.Actions).Action; got != ActionDownload {
		t.Errorf("expected download action, got %v", got)
	}
}

func TestQuit(t *testing.T) {
	controls := NewControls()
	model := NewModel(completeForm(), controls)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("expected quit command")
	}
	select {
	case <-controls.Quit:
	default:
		t.Error("expected quit signal")
	}
}

func TestView(t *testing.T) {
	model := NewModel(completeForm(), nil)
	if model.View() != "Loading..." {
		t.Error("expected loading view before window size")
	}

	next, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model = next.(Model)

	view := model.View()
	if !strings.Contains(view, "30.000.000 VNĐ") {
		t.Error("expected formatted amount preview")
	}
	if !strings.Contains(view, "Câu chuyện của bạn sẽ xuất hiện ở đây.") {
		t.Error("expected story placeholder")
	}

	next, _ = model.Update(StateMsg{State: app.State{LoadingStory: true, Err: app.MsgAudioFailed}})
	view = next.(Model).View()
	if !strings.Contains(view, "AI đang dệt nên") || !strings.Contains(view, app.MsgAudioFailed) {
		t.Errorf("expected loading and error in view:\n%s", view)
	}
}

func TestTruncateLines(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"a\nb", 3, "a\nb"},
		{"a\nb\nc\nd", 3, "a\nb\n..."},
	}

	for _, tt := range tests {
		if got := truncateLines(tt.input, tt.max); got != tt.want {
			t.Errorf("truncateLines(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
