// Package ingest provides the text entry view that annotates and stores new assets.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/input"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/components/status"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/keymap"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/messages"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
)

// Source is recorded as the provenance of assets entered here.
const Source = "tui"

// View is the ingest view.
type View struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	textarea     *input.TextArea
	statusbar    *status.Bar
	assetService driving.AssetService
	ctx          context.Context

	width  int
	height int
	ready  bool
	saving bool
	lastID int64
	err    error
}

// NewView creates a new ingest view.
func NewView(s *styles.Styles, km *keymap.KeyMap, assetService driving.AssetService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	bar := status.NewBar(s, km)
	bar.SetHints([]key.Binding{km.Save, km.Back})

	return &View{
		styles:       s,
		keymap:       km,
		textarea:     input.NewTextArea(s),
		statusbar:    bar,
		assetService: assetService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.textarea.Init()
}

// Update handles messages for the ingest view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AssetIngested:
		return v, v.handleIngested(msg)

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(k, v.keymap.Save):
			return v, v.save()
		}
	}

	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

func (v *View) save() tea.Cmd {
	if v.saving {
		return nil
	}
	if v.assetService == nil {
		v.err = ErrNoAssetService
		v.statusbar.SetState(status.StateError)
		return nil
	}

	text := v.textarea.Value()
	v.saving = true
	v.err = nil
	v.statusbar.SetState(status.StateBusy)
	v.statusbar.SetMessage("Annotating...")

	svc, ctx := v.assetService, v.ctx
	return func() tea.Msg {
		id, err := svc.Ingest(ctx, text, domain.IngestOptions{Type: domain.DefaultAssetType, Source: Source})
		return messages.AssetIngested{ID: id, Err: err}
	}
}

func (v *View) handleIngested(msg messages.AssetIngested) tea.Cmd {
	v.saving = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		if errors.Is(msg.Err, domain.ErrEmptyInput) {
			v.statusbar.SetMessage("Nothing to store")
		} else {
			v.statusbar.SetMessage(msg.Err.Error())
		}
		return nil
	}

	v.err = nil
	v.lastID = msg.ID
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage(fmt.Sprintf("Stored asset %d", msg.ID))
	return v.textarea.Reset()
}

// View renders the ingest view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Ingest"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Text is annotated on save and stored as a new asset."))
	b.WriteString("\n\n")
	b.WriteString(v.textarea.View())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	} else if v.lastID > 0 {
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("Stored asset %d. Search for it from the menu.", v.lastID)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.textarea.SetDimensions(width, height)
	v.statusbar.SetWidth(width)
}

// Text returns the current text.
func (v *View) Text() string {
	return v.textarea.Value()
}

// SetText replaces the current text.
func (v *View) SetText(s string) {
	v.textarea.SetValue(s)
}

// LastID returns the id of the last stored asset, or 0.
func (v *View) LastID() int64 {
	return v.lastID
}

// Saving reports whether an ingest is in flight.
func (v *View) Saving() bool {
	return v.saving
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
