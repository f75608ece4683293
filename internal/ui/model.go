package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/config"
	"burrow/internal/domain"
	"burrow/internal/gopher"
	"burrow/internal/logging"
	"burrow/internal/ui/input"
	inputtypes "burrow/internal/ui/input/types"
	"burrow/internal/ui/services/cursor"
	"burrow/internal/ui/views"
)

// Rows taken by the title, subtitle, footer and scroll markers
const chromeHeight = 10

// Navigator is the part of the navigation engine the UI drives
type Navigator interface {
	Activate(entry domain.DirectoryEntry)
	OpenURL(raw string) error
	SubmitQuery(text string) bool
	CancelQuery()
	GoBack()
	GoHome()
	Reload()
	Stop() bool
	NextPage() bool
	PrevPage() bool
	Document() (domain.DirectoryEntry, []string)
}

// Model represents the UI state
type Model struct {
	nav    Navigator
	config *config.Config
	logger *slog.Logger

	width  int
	height int
	help   help.Model
	keys   keyMap

	// What the engine last showed
	screen  views.Screen
	page    domain.PageInfo
	entries []domain.DirectoryEntry
	lines   []string
	image   string
	history []domain.HistoryItem

	loading       bool
	loadingTarget domain.DirectoryEntry
	ticking       bool

	statusMessage string
	statusIsError bool
	showHelp      bool
	showHistory   bool

	rows          *cursor.Service // cursor over the listing page
	historyCursor *cursor.Service // cursor over the history popup
	renderer      *views.Renderer
	inputHandler  *input.Handler
	pager         *PagerOps
}

// NewModel creates a new UI model
func NewModel(nav Navigator, cfg *config.Config, logger *slog.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Model{
		nav:           nav,
		config:        cfg,
		logger:        logger,
		help:          help.New(),
		keys:          defaultKeyMap(),
		rows:          cursor.NewService(),
		historyCursor: cursor.NewService(),
		renderer:      views.NewRenderer(cfg.UISettings.ShowTypeLabels),
		inputHandler:  input.New(),
		pager:         NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rows.SetViewportHeight(msg.Height - chromeHeight)
		m.historyCursor.SetViewportHeight(msg.Height - chromeHeight)
		return m, nil

	case tickMsg:
		if !m.loading {
			m.ticking = false
			return m, nil
		}
		return m, tick()

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Screen:         m.screen,
		Page:           m.page,
		Entries:        m.entries,
		Lines:          m.lines,
		Image:          m.image,
		SelectedIndex:  m.rows.GetCursor(),
		ViewportOffset: m.rows.GetViewportOffset(),
		ViewportHeight: m.rows.State().ViewportHeight,
		Loading:        m.loading,
		LoadingTarget:  m.loadingTarget.Title(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		Prompt:         m.inputHandler.Prompt(),
		Form:           m.inputHandler.Form(),
		ShowHelp:       m.showHelp,
		HelpText:       m.help.FullHelpView(m.keys.FullHelp()),
		ShortHelpText:  m.help.ShortHelpView(m.keys.ShortHelp()),
		ShowHistory:    m.showHistory,
		History:        m.history,
		HistoryCursor:  m.historyCursor.GetCursor(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.View()
	}
	return m.renderer.Render(state)
}

// handleEvent applies one navigation event to what is on screen
func (m *Model) handleEvent(event domain.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.LoadingEvent:
		m.loading = true
		m.loadingTarget = e.Target
		m.clearStatus()
		if m.ticking {
			return nil
		}
		m.ticking = true
		return tick()

	case domain.ListingReadyEvent:
		m.loading = false
		m.screen = views.ScreenListing
		m.entries = e.Entries
		m.page = e.Page
		m.rows.Reset(len(e.Entries), func(i int) bool {
			return gopher.Classify(e.Entries[i].Type).Action != gopher.ActionNone
		})

	case domain.TextReadyEvent:
		m.loading = false
		m.screen = views.ScreenDocument
		m.lines = e.Lines
		m.page = e.Page

	case domain.ImageReadyEvent:
		m.loading = false
		m.screen = views.ScreenImage
		m.image = describeImage(e.Entry, e.Data)
		m.page = domain.PageInfo{Title: e.Entry.Title(), Number: 1, Count: 1, Total: 1}

	case domain.FailureEvent:
		m.loading = false
		if gopher.IsCancelled(e.Err) {
			m.setStatus("Stopped loading " + e.Target.Title())
		} else {
			m.logger.Warn("fetch failed", "target", e.Target.Title(), "error", e.Err)
			m.setError(fmt.Sprintf("Could not load %s: %v", e.Target.Title(), e.Err))
		}

	case domain.HistoryChangedEvent:
		m.history = e.Items

	case domain.QueryRequestedEvent:
		m.setStatus(e.Entry.DisplayText)
		return m.inputHandler.ChangeMode(inputtypes.ModeQuery, "", m.context())

	case domain.NoticeEvent:
		if e.Kind == domain.NoticeNoHandler {
			m.setError(e.Message)
		} else {
			m.setStatus(e.Message)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		case "ctrl+c":
			return tea.Quit
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.context())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	m.syncHistoryPopup()
	return tea.Batch(cmds...)
}

// processAction carries out one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		target := m.rows
		if m.showHistory {
			target = m.historyCursor
		} else if m.screen != views.ScreenListing {
			// Documents scroll by page
			switch a.Direction {
			case "down":
				m.nav.NextPage()
			case "up":
				m.nav.PrevPage()
			}
			return nil
		}
		target.Navigate(cursor.Direction(a.Direction))

	case inputtypes.PageAction:
		if a.Forward {
			m.nav.NextPage()
		} else {
			m.nav.PrevPage()
		}

	case inputtypes.ActivateAction:
		if m.screen != views.ScreenListing || len(m.entries) == 0 {
			return nil
		}
		if i := m.rows.GetCursor(); i < len(m.entries) {
			m.nav.Activate(m.entries[i])
		}

	case inputtypes.BackAction:
		m.nav.GoBack()

	case inputtypes.HomeAction:
		m.nav.GoHome()

	case inputtypes.ReloadAction:
		m.nav.Reload()

	case inputtypes.StopAction:
		if !m.nav.Stop() {
			m.setStatus("Nothing to stop")
		}

	case inputtypes.OpenPagerAction:
		entry, lines := m.nav.Document()
		if len(lines) == 0 {
			m.setStatus("No document to page")
			return nil
		}
		return m.showPager(entry.Title(), lines)

	case inputtypes.HistoryJumpAction:
		i := m.historyCursor.GetCursor()
		if i < 0 || i >= len(m.history) {
			return nil
		}
		if item := m.history[i]; item.Home {
			m.nav.GoHome()
		} else {
			m.nav.Activate(item.Entry)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeGoTo:
			if a.Text == "" {
				return nil
			}
			if err := m.nav.OpenURL(a.Text); err != nil {
				m.setError(err.Error())
			}
		case inputtypes.ModeQuery:
			m.clearStatus()
			m.nav.SubmitQuery(a.Text)
		}

	case inputtypes.SubmitEntryAction:
		m.clearStatus()
		m.nav.Activate(a.Entry)

	case inputtypes.FormErrorAction:
		m.setError(a.Message)

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeQuery {
			m.clearStatus()
			m.nav.CancelQuery()
		}

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		m.nav.Stop()
		return tea.Quit
	}
	return nil
}

// syncHistoryPopup opens or closes the history popup to follow the input mode
func (m *Model) syncHistoryPopup() {
	open := m.inputHandler.CurrentMode() == inputtypes.ModeHistory
	if open && !m.showHistory {
		m.historyCursor.Reset(len(m.history), nil)
		m.historyCursor.MoveToIndex(len(m.history) - 1)
	}
	m.showHistory = open
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Index:    m.rows.GetCursor(),
		Total:    len(m.entries),
		Document: m.screen != views.ScreenListing,
		Busy:     m.loading,
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
