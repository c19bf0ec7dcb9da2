package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/keymap"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/messages"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/styles"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/views/asset"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/views/dictionary"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/views/ingest"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/views/menu"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/tui/views/search"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles

	menuView       *menu.View
	searchView     *search.View
	assetView      *asset.View
	ingestView     *ingest.View
	dictionaryView *dictionary.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		searchView:     search.NewView(s, km, ports.Search),
		assetView:      asset.NewView(s, km, ports.Asset),
		ingestView:     ingest.NewView(s, km, ports.Asset),
		dictionaryView: dictionary.NewView(s, km, ports.Dictionary),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.assetView.WithContext(ctx)
	a.ingestView.WithContext(ctx)
	a.dictionaryView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("ripple"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		from := a.currentView
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			// Returning from an asset keeps the results.
			if from != messages.ViewAsset {
				a.searchView.Reset()
			}
			return a, a.searchView.Init()
		case messages.ViewIngest:
			return a, a.ingestView.Init()
		case messages.ViewDictionary:
			return a, a.dictionaryView.Load()
		case messages.ViewMenu, messages.ViewAsset, messages.ViewHelp:
		}
		return a, nil

	case messages.AssetSelected:
		from := a.currentView
		a.currentView = messages.ViewAsset
		return a, a.assetView.Open(msg.ID, from)

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.AssetLoaded:
		a.assetView, cmd = a.assetView.Update(msg)
		a.err = a.assetView.Err()
		return a, cmd

	case messages.AssetIngested:
		a.ingestView, cmd = a.ingestView.Update(msg)
		a.err = a.ingestView.Err()
		return a, cmd

	case messages.DictionaryLoaded:
		a.dictionaryView, cmd = a.dictionaryView.Update(msg)
		a.err = a.dictionaryView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewAsset:
		a.assetView, cmd = a.assetView.Update(msg)
	case messages.ViewIngest:
		a.ingestView, cmd = a.ingestView.Update(msg)
	case messages.ViewDictionary:
		a.dictionaryView, cmd = a.dictionaryView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewAsset:
		return a.assetView.View()
	case messages.ViewIngest:
		return a.ingestView.View()
	case messages.ViewDictionary:
		return a.dictionaryView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  /           Search
  q           Quit

Search:
  (type)      Enter a query, e.g. topic:impurity metaphor:wash cleaning
  enter       Submit (empty lists every asset)
  ctrl+e      Show the parsed query

Results:
  j/k, ↑/↓    Navigate results
  enter       Open asset
  n, /        New search
  e           Show the parsed query

Asset:
  tab, ←/→    Switch facet
  1-7         Jump to facet
  j/k, g/G    Scroll

Ingest:
  ctrl+s      Annotate and store

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.assetView.SetDimensions(width, height)
	a.ingestView.SetDimensions(width, height)
	a.dictionaryView.SetDimensions(width, height)
}
