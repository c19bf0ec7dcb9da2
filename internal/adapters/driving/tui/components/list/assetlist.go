// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// linesPerAsset is the rendered height of one entry.
const linesPerAsset = 2

// AssetList displays search results in a navigable list.
type AssetList struct {
	assets   []domain.AssetSummary
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewAssetList creates a new asset list component.
func NewAssetList(s *styles.Styles) *AssetList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &AssetList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (r *AssetList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *AssetList) Update(msg tea.Msg) (*AssetList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the list, scrolled so the selection stays visible.
func (r *AssetList) View() string {
	if len(r.assets) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.assets)*linesPerAsset+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.assets))), "")

	visible := (r.height - 2) / linesPerAsset
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.assets))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderAsset(i, &r.assets[i]))
	}
	return strings.Join(lines, "\n")
}

func (r *AssetList) renderAsset(index int, a *domain.AssetSummary) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	text := truncate(strings.Join(strings.Fields(a.RawText), " "), max(r.width-12, 10))
	head := fmt.Sprintf("%s#%-5d %s", indicator, a.ID, text)
	if index == r.selected {
		head = r.styles.Selected.Render(head)
	} else {
		head = r.styles.Normal.Render(head)
	}

	summary := a.Summary
	if summary == "" {
		summary = "(no summary)"
	}
	return head + "\n" + r.styles.Muted.Render("         "+truncate(summary, max(r.width-12, 10)))
}

// truncate shortens s to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetAssets replaces the list contents and resets the selection.
func (r *AssetList) SetAssets(assets []domain.AssetSummary) {
	r.assets = assets
	r.selected = 0
}

// Assets returns the current assets.
func (r *AssetList) Assets() []domain.AssetSummary {
	return r.assets
}

// Selected returns the index of the selected asset.
func (r *AssetList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *AssetList) SetSelected(index int) {
	if index >= 0 && index < len(r.assets) {
		r.selected = index
	}
}

// SelectedAsset returns the selected asset, or nil if the list is empty.
func (r *AssetList) SelectedAsset() *domain.AssetSummary {
	if r.selected < 0 || r.selected >= len(r.assets) {
		return nil
	}
	return &r.assets[r.selected]
}

// MoveUp moves selection up.
func (r *AssetList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *AssetList) MoveDown() {
	if r.selected < len(r.assets)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *AssetList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of assets.
func (r *AssetList) Count() int {
	return len(r.assets)
}
