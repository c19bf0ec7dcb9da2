// Package search provides the query view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/input"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/list"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/status"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/keymap"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/messages"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
	"github.com/darnYOURsocks/Ripplewin/internal/query"
)

// View is the search view with query input, results list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.AssetList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = navigating results

	// explained is the parsed query shown in the explain panel, nil when hidden.
	explained *domain.StructuredQuery
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewQueryInput(s),
		list:          list.NewAssetList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusInput:    true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if v.explained != nil {
			v.explained = nil
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.String() == "ctrl+e" || (!v.focusInput && msg.String() == "e") {
		v.toggleExplain()
		return v, nil
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			v.explained = nil
			v.statusbar.SetState(status.StateBusy)
			v.statusbar.SetMessage("Searching...")
			return v, v.performSearch(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch msg.String() {
	case "enter":
		if a := v.list.SelectedAsset(); a != nil {
			id := a.ID
			return v, func() tea.Msg {
				return messages.AssetSelected{ID: id}
			}
		}
	case "up", "k":
		v.list.MoveUp()
	case "down", "j":
		v.list.MoveDown()
	case "n", "/":
		v.focusInput = true
		v.input.SetValue("")
		v.statusbar.SetHints(v.keymap.ShortHelp())
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *View) toggleExplain() {
	if v.explained != nil {
		v.explained = nil
		return
	}
	q := query.Parse(v.input.Value())
	if v.searchService != nil {
		q = v.searchService.Explain(v.input.Value())
	}
	v.explained = &q
}

// performSearch runs the query. An empty query lists every asset.
func (v *View) performSearch(q string) tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		results, err := v.searchService.Search(v.ctx, q)
		return messages.SearchCompleted{Query: q, Results: results, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetAssets(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(msg.Results))

	if len(msg.Results) > 0 {
		v.focusInput = false
		v.input.Blur()
		v.statusbar.SetHints(v.keymap.ResultsHelp())
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Ripple Search"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.explained != nil {
		sections = append(sections, v.renderExplain(), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderExplain() string {
	q := *v.explained
	lines := []string{
		v.styles.Subtitle.Render("Parsed query"),
		fmt.Sprintf("canonical:    %s", query.Format(q)),
		fmt.Sprintf("free text:    %q", q.FreeText),
		fmt.Sprintf("topic:        %q", q.Topic),
		fmt.Sprintf("metaphor:     %q", q.Metaphor),
		fmt.Sprintf("hasStrategy:  %v", q.HasStrategy),
	}
	if q.IsEmpty() {
		lines = append(lines, v.styles.Muted.Render("matches every asset"))
	}
	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query text.
func (v *View) SetQuery(q string) {
	v.input.SetValue(q)
}

// Results returns the current results.
func (v *View) Results() []domain.AssetSummary {
	return v.list.Assets()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Explained returns the query shown in the explain panel, or nil.
func (v *View) Explained() *domain.StructuredQuery {
	return v.explained
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to an empty query with no results.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetAssets(nil)
	v.err = nil
	v.explained = nil
	v.statusbar.Clear()
	v.statusbar.SetHints(v.keymap.ShortHelp())
}
