// Package asset provides the tabbed asset detail view for the TUI.
package asset

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/status"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/keymap"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/messages"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
)

// Tab identifies one pane of the asset view.
type Tab int

const (
	TabRaw Tab = iota
	TabKeywords
	TabMetaphors
	TabStructure
	TabStrategy
	TabSummary
	TabHumanized
)

var tabNames = []string{"Raw", "Keywords", "Metaphors", "Structure", "Strategy", "Summary", "Humanized"}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

// View shows one asset with a tab per facet.
type View struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	statusbar    *status.Bar
	assetService driving.AssetService
	ctx          context.Context

	id       int64
	detail   *domain.AssetDetail
	tab      Tab
	lines    []string
	scroll   int
	width    int
	height   int
	ready    bool
	loading  bool
	notFound bool
	err      error

	// back is the view esc returns to.
	back messages.ViewType
}

// NewView creates a new asset view.
func NewView(s *styles.Styles, km *keymap.KeyMap, assetService driving.AssetService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	bar := status.NewBar(s, km)
	bar.SetHints(km.AssetHelp())

	return &View{
		styles:       s,
		keymap:       km,
		statusbar:    bar,
		assetService: assetService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
		back:         messages.ViewSearch,
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

// Open clears the view and loads the asset with the given id.
func (v *View) Open(id int64, back messages.ViewType) tea.Cmd {
	v.id = id
	v.back = back
	v.detail = nil
	v.notFound = false
	v.err = nil
	v.tab = TabRaw
	v.scroll = 0
	v.lines = nil
	v.loading = true
	return v.load(id)
}

func (v *View) load(id int64) tea.Cmd {
	return func() tea.Msg {
		if v.assetService == nil {
			return messages.AssetLoaded{ID: id, Err: ErrNoAssetService}
		}
		detail, found, err := v.assetService.Get(v.ctx, id)
		return messages.AssetLoaded{ID: id, Detail: detail, Found: found, Err: err}
	}
}

// Update handles messages for the asset view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AssetLoaded:
		if msg.ID != v.id {
			return v, nil
		}
		v.loading = false
		switch {
		case msg.Err != nil:
			v.err = msg.Err
		case !msg.Found:
			v.notFound = true
		default:
			v.detail = msg.Detail
		}
		v.refresh()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	case keymap.Matches(k, v.keymap.NextTab):
		v.SetTab((v.tab + 1) % Tab(len(tabNames)))
	case keymap.Matches(k, v.keymap.PrevTab):
		v.SetTab((v.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case k >= "1" && k <= "7" && len(k) == 1:
		v.SetTab(Tab(k[0] - '1'))
	case keymap.Matches(k, v.keymap.Up):
		if v.scroll > 0 {
			v.scroll--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.scroll < v.maxScroll() {
			v.scroll++
		}
	case k == "g" || k == "home":
		v.scroll = 0
	case k == "G" || k == "end":
		v.scroll = v.maxScroll()
	}
	return v, nil
}

// SetTab switches to a tab and scrolls to its top.
func (v *View) SetTab(t Tab) {
	if t < 0 || int(t) >= len(tabNames) {
		return
	}
	v.tab = t
	v.scroll = 0
	v.refresh()
}

// refresh rebuilds the wrapped lines of the current tab.
func (v *View) refresh() {
	v.lines = wrap(v.TabContent(), max(v.width-4, 20))
	v.scroll = min(v.scroll, v.maxScroll())
}

// TabContent returns the text of the current tab. Facets are pretty-printed
// and a facet that cannot be parsed is shown as stored.
func (v *View) TabContent() string {
	if v.detail == nil {
		return ""
	}
	d := v.detail
	switch v.tab {
	case TabRaw:
		return d.RawText
	case TabKeywords:
		return facetText(d.Keywords)
	case TabMetaphors:
		return facetText(d.Metaphors)
	case TabStructure:
		return facetText(d.Structure)
	case TabStrategy:
		return facetText(d.Strategy)
	case TabSummary:
		return d.Summary
	case TabHumanized:
		return d.Humanized
	}
	return ""
}

func facetText(b domain.FacetBlob) string {
	if !b.Valid() {
		return "(malformed, shown as stored)\n" + b.Raw
	}
	return b.Display()
}

func wrap(content string, width int) []string {
	if content == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(content, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			out = append(out, string(runes[:width]))
			runes = runes[width:]
		}
		out = append(out, string(runes))
	}
	return out
}

func (v *View) visibleLines() int {
	// title, meta, tabs, separator, blank, status and padding
	return max(v.height-9, 1)
}

func (v *View) maxScroll() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// View renders the asset view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Asset #%d", v.id)))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n" + v.styles.Help.Render("[esc] back"))
		return b.String()
	case v.notFound:
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Asset %d not found.", v.id)))
		b.WriteString("\n\n" + v.styles.Help.Render("[esc] back"))
		return b.String()
	case v.detail == nil:
		return b.String()
	}

	d := v.detail
	meta := fmt.Sprintf("%s  %s", d.Type, time.Unix(d.CreatedAt, 0).Format("2006-01-02 15:04"))
	if d.Source != "" {
		meta += "  " + d.Source
	}
	b.WriteString(v.styles.Muted.Render(meta))
	b.WriteString("\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 10), 72)))
	b.WriteString("\n")

	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(empty)"))
		b.WriteString("\n")
	}
	end := min(v.scroll+v.visibleLines(), len(v.lines))
	for _, line := range v.lines[v.scroll:end] {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == v.tab {
			parts[i] = v.styles.ActiveTab.Render(label)
		} else {
			parts[i] = v.styles.Tab.Render(label)
		}
	}
	return strings.Join(parts, "")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	v.refresh()
}

// Tab returns the active tab.
func (v *View) Tab() Tab {
	return v.tab
}

// Detail returns the loaded asset, or nil.
func (v *View) Detail() *domain.AssetDetail {
	return v.detail
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
