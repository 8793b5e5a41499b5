// ABOUTME: Tests for goal form, prompt rendering and story generation
// ABOUTME: Uses a fake transport in place of the text model
package story

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

type fakeClient struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
	}}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2025-10-15", "15-10-2025"},
		{"", ""},
		{"15/10/2025", "15/10/2025"},
		{"2025-10", "2025-10"},
		{"2025-10-15-01", "2025-10-15-01"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.input); got != tt.expected {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{30000000, "30.000.000"},
		{1234567, "1.234.567"},
		{-1500, "-1.500"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.input); got != tt.expected {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormIncomplete(t *testing.T) {
	form := DefaultForm()
	if !form.Incomplete() {
		t.Error("default form has no date and should be incomplete")
	}

	form.Date = "2025-11-01"
	if form.Incomplete() {
		t.Error("filled form should be complete")
	}

	noAmount := form
	noAmount.Amount = 0
	if !noAmount.Incomplete() {
		t.Error("zero amount should be incomplete")
	}

	noPronoun := form
	noPronoun.CelebrateWith2Pronoun = ""
	if !noPronoun.Incomplete() {
		t.Error("empty pronoun should be incomplete")
	}
}

func TestPrompt(t *testing.T) {
	form := DefaultForm()
	form.Date = "2025-11-01"

	prompt := Prompt(form)

	for _, want := range []string{
		"- Ngày đạt được: 01-11-2025",
		"- Số tiền đạt được: 30.000.000 VND",
		`Bắt đầu bằng "Hôm nay, ngày 01-11-2025, tôi, Lê Trường, đang...".`,
		`"Chúc mừng anh nhé!"`,
		"Kể lại việc nhắn tin vào zoom Liên Minh",
		"KHÔNG thêm bất kỳ lời cảm ơn nào",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "&amp;") || strings.Contains(prompt, "&#34;") {
		t.Error("prompt should not be HTML-escaped")
	}
}

func TestGeneratorAppendsFooter(t *testing.T) {
	client := &fakeClient{resp: textResponse("Hôm nay là một ngày tuyệt vời của tôi.")}
	gen := NewGenerator(client, "")

	text, err := gen.Generate(context.Background(), DefaultForm())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if client.model != DefaultModel {
		t.Errorf("expected model %s, got %s", DefaultModel, client.model)
	}
	if text != "Hôm nay là một ngày tuyệt vời của tôi."+Footer {
		t.Errorf("unexpected story %q", text)
	}
	if !strings.HasPrefix(Footer, "\n\n") {
		t.Error("footer should be separated by a blank line")
	}
	if client.config != nil {
		t.Error("story request should be plain text")
	}
	if len(client.contents) != 1 || client.contents[0].Parts[0].Text != Prompt(DefaultForm()) {
		t.Error("story request should carry the rendered prompt")
	}
}

func TestGeneratorErrors(t *testing.T) {
	transportErr := errors.New("HTTP 500")

	_, err := NewGenerator(&fakeClient{err: transportErr}, "m").Generate(context.Background(), DefaultForm())
	if !errors.Is(err, transportErr) {
		t.Errorf("expected wrapped transport error, got %v", err)
	}

	_, err = NewGenerator(&fakeClient{resp: &genai.GenerateContentResponse{}}, "m").Generate(context.Background(), DefaultForm())
	if !errors.Is(err, ErrEmptyStory) {
		t.Errorf("expected ErrEmptyStory, got %v", err)
	}
}
