package dictionary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/messages"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

type mockDictionaryService struct {
	terms []domain.DomainTerm
	err   error
}

func (m *mockDictionaryService) List(context.Context) ([]domain.DomainTerm, error) {
	return m.terms, m.err
}

func (m *mockDictionaryService) Vocabulary() domain.Vocabulary {
	return domain.Vocabulary{}
}

func terms(n int) []domain.DomainTerm {
	out := make([]domain.DomainTerm, n)
	for i := range out {
		out[i] = domain.DomainTerm{
			ID:                   int64(i + 1),
			Term:                 fmt.Sprintf("term-%d", i),
			Domain:               "physics",
			HumanAnalogy:         "an analogy",
			HumanContextStrategy: "a strategy",
		}
	}
	return out
}

func loaded(t *testing.T, svc *mockDictionaryService, height int) *View {
	t.Helper()
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, height)
	cmd := v.Load()
	require.NotNil(t, cmd)
	v.Update(cmd())
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, "Initialising...", v.View())
	assert.Nil(t, v.Init())
}

func TestView_Load(t *testing.T) {
	v := loaded(t, &mockDictionaryService{terms: terms(2)}, 30)

	require.NoError(t, v.Err())
	assert.Len(t, v.Terms(), 2)
	out := v.View()
	assert.Contains(t, out, "term-0 (physics)")
	assert.Contains(t, out, "an analogy")
	assert.Contains(t, out, "2 terms")
}

func TestView_LoadingState(t *testing.T) {
	v := NewView(nil, nil, &mockDictionaryService{})
	v.SetDimensions(100, 30)
	v.Load()

	assert.Contains(t, v.View(), "Loading...")
}

func TestView_Empty(t *testing.T) {
	v := loaded(t, &mockDictionaryService{}, 30)

	assert.Contains(t, v.View(), "Dictionary is empty.")
}

func TestView_LoadError(t *testing.T) {
	v := loaded(t, &mockDictionaryService{err: errors.New("locked")}, 30)

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "locked")
}

func TestView_NilService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(100, 30)
	v.Update(v.Load()())

	assert.ErrorIs(t, v.Err(), ErrNoDictionaryService)
}

func TestView_NavigationScrolls(t *testing.T) {
	// (20-6)/4 = 3 terms visible
	v := loaded(t, &mockDictionaryService{terms: terms(10)}, 20)

	for range 5 {
		v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 5, v.Selected())
	out := v.View()
	assert.Contains(t, out, "term-5")
	assert.NotContains(t, out, "term-0 ")

	for range 20 {
		v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 9, v.Selected())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 8, v.Selected())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := loaded(t, &mockDictionaryService{}, 30)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
