package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryInput(t *testing.T) {
	q := NewQueryInput(nil)

	require.NotNil(t, q)
	assert.NotNil(t, q.styles)
	assert.Equal(t, "", q.Value())
	assert.True(t, q.Focused())
	assert.NotNil(t, q.Init())
}

func TestQueryInput_Typing(t *testing.T) {
	q := NewQueryInput(nil)

	q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("topic:x")})

	assert.Equal(t, "topic:x", q.Value())
}

func TestQueryInput_FocusAndValue(t *testing.T) {
	q := NewQueryInput(nil)

	q.Blur()
	assert.False(t, q.Focused())
	q.Focus()
	assert.True(t, q.Focused())

	q.SetValue("loop")
	assert.Equal(t, "loop", q.Value())
	assert.Contains(t, q.View(), "Query:")
}

func TestQueryInput_SetWidth(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetWidth(10)
	assert.Equal(t, 20, q.textinput.Width)

	q.SetWidth(100)
	assert.Equal(t, 88, q.textinput.Width)
}

func TestTextArea(t *testing.T) {
	ta := NewTextArea(nil)
	require.NotNil(t, ta)

	ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dirty")})
	assert.Equal(t, "dirty", ta.Value())

	ta.Update(tea.KeyMsg{Type: tea.KeyEnter})
	ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("loop")})
	assert.Equal(t, "dirty\nloop", ta.Value())

	ta.Reset()
	assert.Equal(t, "", ta.Value())

	ta.SetValue("clean")
	assert.Equal(t, "clean", ta.Value())
}
