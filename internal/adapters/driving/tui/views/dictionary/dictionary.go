// Package dictionary provides a read-only browser for the domain dictionary.
package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/status"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/keymap"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/messages"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
)

// linesPerTerm is the rendered height of one dictionary entry.
const linesPerTerm = 4

// View lists dictionary terms with their analogy and strategy.
type View struct {
	styles            *styles.Styles
	keymap            *keymap.KeyMap
	statusbar         *status.Bar
	dictionaryService driving.DictionaryService
	ctx               context.Context

	terms    []domain.DomainTerm
	selected int
	offset   int
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
}

// NewView creates a new dictionary view.
func NewView(s *styles.Styles, km *keymap.KeyMap, dictionaryService driving.DictionaryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	bar := status.NewBar(s, km)
	bar.SetHints([]key.Binding{km.Up, km.Down, km.Back})

	return &View{
		styles:            s,
		keymap:            km,
		statusbar:         bar,
		dictionaryService: dictionaryService,
		ctx:               context.Background(),
		width:             80,
		height:            24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load fetches the terms.
func (v *View) Load() tea.Cmd {
	v.loading = true
	v.err = nil
	svc, ctx := v.dictionaryService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.DictionaryLoaded{Err: ErrNoDictionaryService}
		}
		terms, err := svc.List(ctx)
		return messages.DictionaryLoaded{Terms: terms, Err: err}
	}
}

// Update handles messages for the dictionary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.DictionaryLoaded:
		v.loading = false
		v.err = msg.Err
		v.terms = msg.Terms
		v.selected = 0
		v.offset = 0
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateReady)
			v.statusbar.SetMessage(fmt.Sprintf("%d terms", len(msg.Terms)))
		}

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.terms)-1 {
				v.selected++
			}
		}
		v.follow()
	}
	return v, nil
}

func (v *View) visibleTerms() int {
	return max((v.height-6)/linesPerTerm, 1)
}

// follow keeps the selection inside the visible window.
func (v *View) follow() {
	n := v.visibleTerms()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+n {
		v.offset = v.selected - n + 1
	}
}

// View renders the dictionary.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Dictionary"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case len(v.terms) == 0:
		b.WriteString(v.styles.Muted.Render("Dictionary is empty."))
		b.WriteString("\n")
	default:
		end := min(v.offset+v.visibleTerms(), len(v.terms))
		for i := v.offset; i < end; i++ {
			b.WriteString(v.renderTerm(v.terms[i], i == v.selected))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderTerm(t domain.DomainTerm, selected bool) string {
	var b strings.Builder
	head := fmt.Sprintf("%s (%s)", t.Term, t.Domain)
	if selected {
		b.WriteString("> " + v.styles.Selected.Render(head))
	} else {
		b.WriteString("  " + v.styles.Subtitle.Render(head))
	}
	b.WriteString("\n")
	b.WriteString("    " + v.styles.Normal.Render(t.HumanAnalogy))
	b.WriteString("\n")
	b.WriteString("    " + v.styles.Muted.Render(t.HumanContextStrategy))
	b.WriteString("\n\n")
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	v.follow()
}

// Terms returns the loaded terms.
func (v *View) Terms() []domain.DomainTerm {
	return v.terms
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
