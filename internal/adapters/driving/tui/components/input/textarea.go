package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
)

// TextArea is a multi-line input for text to ingest.
type TextArea struct {
	textarea textarea.Model
	styles   *styles.Styles
}

// NewTextArea creates a focused, empty text area.
func NewTextArea(s *styles.Styles) *TextArea {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type a conversation, note or journal entry..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(10)
	ta.Focus()

	return &TextArea{textarea: ta, styles: s}
}

// Init initialises the text area.
func (t *TextArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (t *TextArea) Update(msg tea.Msg) (*TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return t, cmd
}

// View renders the framed text area.
func (t *TextArea) View() string {
	return t.styles.InputField.Render(t.textarea.View())
}

// Value returns the entered text.
func (t *TextArea) Value() string {
	return t.textarea.Value()
}

// SetValue replaces the entered text.
func (t *TextArea) SetValue(v string) {
	t.textarea.SetValue(v)
}

// Reset clears the text and refocuses.
func (t *TextArea) Reset() tea.Cmd {
	t.textarea.Reset()
	return t.textarea.Focus()
}

// SetDimensions sizes the text area within the given bounds.
func (t *TextArea) SetDimensions(width, height int) {
	t.textarea.SetWidth(max(width-6, 20))
	t.textarea.SetHeight(max(height-10, 3))
}
