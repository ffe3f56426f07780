package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtree-project/gtree/internal/adapters/driving/tui/components/status"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/keymap"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/messages"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/styles"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/views/chart"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/views/issues"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/views/menu"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/views/persons"
	"github.com/gtree-project/gtree/internal/adapters/driving/tui/views/profile"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// watcher reports external edits of the tree file. May be nil.
	watcher *Watcher

	// menuView is the main navigation menu.
	menuView *menu.View

	// personsView is the navigable person list.
	personsView *persons.View

	// profileView shows one person's profile card.
	profileView *profile.View

	// chartView shows an ancestor or descendant chart.
	chartView *chart.View

	// issuesView shows validation findings.
	issuesView *issues.View

	// statusBar shows the open file and keybinding hints.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
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

	a := &App{
		ports:       ports,
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		personsView: persons.NewView(s),
		profileView: profile.NewView(s),
		chartView:   chart.NewView(s),
		issuesView:  issues.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewMenu,
	}
	a.refreshPersons()
	return a, nil
}

// WithWatcher attaches a file watcher so external edits reload the
// tree while the shell is open.
func (a *App) WithWatcher(w *Watcher) *App {
	a.watcher = w
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("gtree - " + filepath.Base(a.ports.Path)),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.waitForChange())
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks until the tree file changes on disk.
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-a.watcher.Changes(); !ok {
			return nil
		}
		return messages.FileChanged{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		body := msg.Height - 1 // status bar
		a.menuView.SetDimensions(msg.Width, body)
		a.personsView.SetDimensions(msg.Width, body)
		a.profileView.SetDimensions(msg.Width, body)
		a.chartView.SetDimensions(msg.Width, body)
		a.issuesView.SetDimensions(msg.Width, body)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewPersons:
			a.personsView, cmd = a.personsView.Update(msg)
		case messages.ViewProfile:
			a.profileView, cmd = a.profileView.Update(msg)
		case messages.ViewChart:
			a.chartView, cmd = a.chartView.Update(msg)
		case messages.ViewIssues:
			a.issuesView, cmd = a.issuesView.Update(msg)
		case messages.ViewHelp:
			if msg.String() == "esc" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewPersons:
			a.refreshPersons()
			a.statusBar.SetState(status.StateBrowsing)
		case messages.ViewIssues:
			a.issuesView.SetIssues(a.ports.Renderer.Issues(a.ports.Query.Validate()))
			a.statusBar.SetState(status.StateReady)
		case messages.ViewMenu, messages.ViewProfile, messages.ViewChart, messages.ViewHelp:
			a.statusBar.SetState(status.StateReady)
		}
		return a, nil

	case messages.PersonSelected:
		return a, a.openProfile(msg.ID)

	case messages.ChartRequested:
		return a, a.openChart(msg.ID, msg.Ancestors)

	case messages.FileChanged:
		return a, tea.Batch(a.reload(), a.waitForChange())

	case messages.TreeReloaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		if msg.Query != nil {
			a.ports.Query = msg.Query
		}
		a.refreshPersons()
		a.statusBar.SetState(status.StateReloaded)
		// Re-render whatever derived view is open.
		switch a.currentView {
		case messages.ViewProfile:
			return a, a.openProfile(a.profileView.PersonID())
		case messages.ViewChart:
			return a, a.openChart(a.chartView.RootID(), a.chartView.Ancestors())
		case messages.ViewIssues:
			a.issuesView.SetIssues(a.ports.Renderer.Issues(a.ports.Query.Validate()))
		case messages.ViewMenu, messages.ViewPersons, messages.ViewHelp:
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, cmd
}

// openProfile renders and shows a person's profile card.
func (a *App) openProfile(id string) tea.Cmd {
	card, err := a.ports.Renderer.Profile(a.ports.Query, id)
	if err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	a.profileView.SetProfile(id, card)
	a.currentView = messages.ViewProfile
	return nil
}

// openChart renders and shows a chart rooted at a person.
func (a *App) openChart(id string, ancestors bool) tea.Cmd {
	var (
		out string
		err error
	)
	if ancestors {
		out, err = a.ports.Renderer.AncestorChart(a.ports.Query, id, 0)
	} else {
		out, err = a.ports.Renderer.DescendantChart(a.ports.Query, id, 0)
	}
	if err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	a.chartView.SetChart(id, ancestors, out)
	a.currentView = messages.ViewChart
	return nil
}

// reload re-reads the tree file after an external change. The command
// runs on its own goroutine, so it must not touch the model; the new
// query service travels back in the TreeReloaded message.
func (a *App) reload() tea.Cmd {
	load := a.ports.Reload
	return func() tea.Msg {
		if load == nil {
			return messages.TreeReloaded{}
		}
		q, err := load()
		if err != nil {
			return messages.TreeReloaded{Err: err}
		}
		return messages.TreeReloaded{Query: q}
	}
}

// refreshPersons reloads the person list and the status bar counters.
func (a *App) refreshPersons() {
	list := a.ports.Query.Persons()
	a.personsView.SetPersons(list)
	a.statusBar.SetFile(filepath.Base(a.ports.Path), len(list))
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewMenu:
		body = a.menuView.View()
	case messages.ViewPersons:
		body = a.personsView.View()
	case messages.ViewProfile:
		body = a.profileView.View()
	case messages.ViewChart:
		body = a.chartView.View()
	case messages.ViewIssues:
		body = a.issuesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Persons:
  j/k, ↑/↓    Navigate
  enter       Open profile
  t           Descendant chart
  a           Ancestor chart

Chart:
  a           Toggle ancestors/descendants
  j/k         Scroll

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
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

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.personsView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
