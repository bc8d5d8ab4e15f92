package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"atlas/internal/config"
	"atlas/internal/dataset"
	"atlas/internal/domain"
	"atlas/internal/eventbus"
	"atlas/internal/pager"
	"atlas/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	store      *dataset.Store
	controller *pager.Controller

	width          int
	height         int
	viewportHeight int
	cursor         int
	offset         int

	searching   bool // search input focused
	searchInput textinput.Model

	fetching bool
	fetchErr error
	spin     spinner.Model

	showHelp      bool
	statusMessage string

	renderer *views.Renderer
	detail   *DetailOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *dataset.Store, controller *pager.Controller) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "name, code, region or capital"
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		bus:            bus,
		config:         cfg,
		store:          store,
		controller:     controller,
		viewportHeight: 20, // Will be updated on first WindowSizeMsg
		searchInput:    ti,
		spin:           sp,
		renderer:       views.NewRenderer(),
		detail:         NewDetailOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.detail != nil {
		m.detail.SetProgram(p)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		m.ensureCursorVisible()

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if m.fetching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case detailPagerMsg:
		if msg.err != nil {
			log.Error("detail pager failed", "err", msg.err)
			m.statusMessage = "Could not open detail view"
		}

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
			}
			return m, nil
		}

		if m.searching {
			return m, m.handleSearchKey(msg)
		}
		return m, m.handleNormalKey(msg)
	}

	return m, nil
}

// handleSearchKey processes keys while the search input is focused
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit

	case "esc":
		// Cancel the search entirely and go back to browsing
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.applyQuery("")
		return nil

	case "enter":
		// Keep the query applied, release focus
		m.searching = false
		m.searchInput.Blur()
		return nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.applyQuery(after)
	}
	return cmd
}

// handleNormalKey processes keys in list navigation mode
func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return textinput.Blink

	case "esc":
		if m.controller.Query() != "" {
			m.searchInput.Reset()
			m.applyQuery("")
		}

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "pgup":
		m.moveCursor(-m.viewportHeight)

	case "pgdown":
		m.moveCursor(m.viewportHeight)

	case "g", "home":
		m.cursor = 0
		m.ensureCursorVisible()

	case "G", "end":
		m.moveCursorTo(m.controller.VisibleCount() - 1)

	case "enter":
		if m.controller.VisibleCount() > 0 {
			country := m.controller.VisibleAt(m.cursor)
			return func() tea.Msg {
				return detailPagerMsg{err: m.detail.ShowCountryInPager(country)}
			}
		}

	case "r":
		if !m.fetching && !m.store.Ready() {
			m.fetchErr = nil
			m.bus.Publish(eventbus.FetchRequestedEvent{})
		}

	case "?":
		m.showHelp = true
	}

	return nil
}

// handleEvent consumes domain events forwarded from the bus. All dataset
// mutation happens here, on the program's single Update goroutine.
func (m *Model) handleEvent(event domain.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.FetchStartedEvent:
		m.fetching = true
		m.fetchErr = nil
		return m.spin.Tick

	case domain.DatasetLoadedEvent:
		m.fetching = false
		m.store.Load(e.Countries)
		m.controller.OnDataReady()
		m.ensureCursorVisible()

	case domain.DatasetFailedEvent:
		m.fetching = false
		m.fetchErr = e.Err

	case domain.ErrorEvent:
		m.statusMessage = e.Message
	}

	return nil
}

// applyQuery forwards a query change to the controller and resets the
// viewport to the top of the new visible sequence.
func (m *Model) applyQuery(query string) {
	m.controller.OnQueryChanged(query)
	m.cursor = 0
	m.offset = 0
}

// moveCursor moves the cursor by delta rows, clamped to the visible
// sequence, and fires the near-end trigger when the cursor lands on the
// last loaded row.
func (m *Model) moveCursor(delta int) {
	m.moveCursorTo(m.cursor + delta)
}

func (m *Model) moveCursorTo(target int) {
	count := m.controller.VisibleCount()
	if count == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}

	if target < 0 {
		target = 0
	}
	if target > count-1 {
		target = count - 1
	}
	m.cursor = target

	if m.cursor == count-1 {
		m.controller.OnNearEnd(m.cursor)
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible keeps the cursor within the rendered window
func (m *Model) ensureCursorVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.viewportHeight {
		m.offset = m.cursor - m.viewportHeight + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// updateViewportHeight recalculates how many rows fit on screen
func (m *Model) updateViewportHeight() {
	// Title, search line, status line, help hint, container padding
	chrome := 9
	m.viewportHeight = m.height - chrome
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
}

// View renders the UI
func (m *Model) View() string {
	inSearch := m.controller.Mode() == pager.ModeSearch

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		ViewportHeight: m.viewportHeight,
		Window:         m.controller.Window(m.offset, m.offset+m.viewportHeight),
		WindowStart:    m.offset,
		Cursor:         m.cursor,
		Count:          m.controller.VisibleCount(),
		Total:          m.store.Len(),
		Searching:      m.searching,
		Query:          m.controller.Query(),
		SearchInput:    m.searchInput.View(),
		InSearch:       inSearch,
		Fetching:       m.fetching,
		Spinner:        m.spin.View(),
		FetchErr:       m.fetchErr,
		ShowHelp:       m.showHelp,
		StatusMessage:  m.statusMessage,
		ShowRegion:     m.config.UISettings.ShowRegion,
		ShowCapital:    m.config.UISettings.ShowCapital,
	})
}
