// ABOUTME: Bubbletea model for the goal-picture TUI
// ABOUTME: Defines form editing, key handling and rendering of app state
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/visionboard/visionboard-go/internal/app"
	"github.com/visionboard/visionboard-go/internal/story"
)

type field struct {
	label   string
	numeric bool
}

// fields in form order; indexes match formValues
var fields = []field{
	{label: "Ngày đạt mục tiêu (YYYY-MM-DD)"},
	{label: "Tên của bạn"},
	{label: "Địa điểm"},
	{label: "Số tiền (VNĐ)", numeric: true},
	{label: "Tài khoản nhận tiền"},
	{label: "Khoảnh khắc đạt mục tiêu"},
	{label: "Ăn mừng trực tiếp với ai"},
	{label: "Ai sẽ nhắn tin chúc mừng bạn?"},
	{label: "Cách họ gọi bạn (trong tin nhắn)"},
	{label: "Nhắn tin vào đâu"},
}

const amountField = 3

// Model represents the TUI state
type Model struct {
	values   []string
	focus    int
	state    app.State
	controls *Controls

	// Dimensions
	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(form story.Form, controls *Controls) Model {
	return Model{
		values:   formValues(form),
		state:    app.State{Form: form},
		controls: controls,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StateMsg:
		m.state = msg.State
	}

	return m, nil
}

// Form returns the form as currently typed
func (m Model) Form() story.Form {
	return valuesForm(m.values)
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.controls != nil {
			select {
			case m.controls.Quit <- QuitMsg{}:
			default:
			}
		}
		return m, tea.Quit
	case "tab", "down", "enter":
		m.focus = (m.focus + 1) % len(fields)
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(fields)) % len(fields)
	case "backspace":
		v := []rune(m.values[m.focus])
		if len(v) > 0 {
			m.values[m.focus] = string(v[:len(v)-1])
		}
	case "ctrl+u":
		m.values[m.focus] = ""
	case "ctrl+g":
		if !m.state.LoadingStory && !m.Form().Incomplete() {
			m.send(ActionGenerateStory)
		}
	case "ctrl+a":
		if m.state.Story != "" && !m.state.LoadingAudio {
			m.send(ActionGenerateAudio)
		}
	case "ctrl+p":
		if m.state.HasAudio() {
			m.send(ActionReplay)
		}
	case "ctrl+d":
		if m.state.HasAudio() {
			m.send(ActionDownload)
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.insert(msg.Runes)
		}
	}

	return m, nil
}

func (m *Model) insert(runes []rune) {
	if fields[m.focus].numeric {
		for _, r := range runes {
			if !unicode.IsDigit(r) {
				return
			}
		}
	}
	m.values[m.focus] += string(runes)
}

func (m Model) send(action Action) {
	if m.controls == nil {
		return
	}
	select {
	case m.controls.Actions <- ActionMsg{Action: action, Form: m.Form()}:
	default:
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString(m.renderForm())
	sb.WriteString(m.renderResult())
	sb.WriteString(m.renderHelp())
	return sb.String()
}

// renderHeader renders the title
func (m Model) renderHeader() string {
	return "Bức Tranh Mục Tiêu 30 Ngày\n" +
		"Kiến tạo tương lai rực rỡ của bạn bằng sức mạnh của ngôn từ và AI.\n\n"
}

// renderForm renders the input fields with the focused one marked
func (m Model) renderForm() string {
	var sb strings.Builder
	sb.WriteString("Nhập thông tin của bạn\n")
	for i, f := range fields {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%-34s %s\n", cursor, f.label+":", m.values[i]))
		if i == amountField {
			if amount := parseAmount(m.values[i]); amount > 0 {
				sb.WriteString(fmt.Sprintf("  %-34s Hiển thị: %s VNĐ\n", "", story.FormatAmount(amount)))
			}
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderResult renders the story, progress and errors
func (m Model) renderResult() string {
	var sb strings.Builder
	sb.WriteString("Bức tranh của bạn\n")

	if m.state.Err != "" {
		sb.WriteString("! " + m.state.Err + "\n")
	}

	switch {
	case m.state.LoadingStory:
		sb.WriteString("AI đang dệt nên câu chuyện thành công của bạn...\n")
	case m.state.Story == "":
		sb.WriteString("Câu chuyện của bạn sẽ xuất hiện ở đây.\n")
	default:
		sb.WriteString(truncateLines(m.state.Story, m.storyLines()) + "\n")
	}

	if m.state.LoadingAudio {
		sb.WriteString("Đang tạo âm thanh...\n")
	}
	if m.state.SavedPath != "" {
		sb.WriteString("Đã lưu: " + m.state.SavedPath + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return "tab/↑↓:Field  ctrl+g:Tạo Bức Tranh  ctrl+a:Nghe Câu Chuyện  ctrl+p:Replay  ctrl+d:Tải Audio  esc:Quit\n"
}

// storyLines is the number of story lines that fit below the form
func (m Model) storyLines() int {
	used := len(fields) + 10
	if m.height-used < 3 {
		return 3
	}
	return m.height - used
}

// StateMsg updates TUI state from the application
type StateMsg struct {
	State app.State
}

func formValues(f story.Form) []string {
	amount := ""
	if f.Amount != 0 {
		amount = strconv.FormatInt(f.Amount, 10)
	}
	return []string{
		f.Date, f.Name, f.Location, amount, f.Account, f.Moment,
		f.CelebrateWith1, f.CelebrateWith2, f.CelebrateWith2Pronoun, f.MessageTo,
	}
}

func valuesForm(v []string) story.Form {
	return story.Form{
		Date:                  v[0],
		Name:                  v[1],
		Location:              v[2],
		Amount:                parseAmount(v[3]),
		Account:               v[4],
		Moment:                v[5],
		CelebrateWith1:        v[6],
		CelebrateWith2:        v[7],
		CelebrateWith2Pronoun: v[8],
		MessageTo:             v[9],
	}
}

// parseAmount returns 0 for empty or unparsable input
func parseAmount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func truncateLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max-1], "\n") + "\n..."
}
