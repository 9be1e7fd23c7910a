// Package app is the interactive roster TUI. Model is the single explicit
// application state: it owns the store and the current snapshot, and
// children report back to it only through messages.
package app

import (
	"fmt"

	"roster/cmd/roster/ui"
	"roster/internal/logging"
	"roster/internal/roster"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Title is shown in the header bar.
const Title = "roster"

// Model is the top-level bubbletea model.
type Model struct {
	store    *roster.Store
	snapshot roster.Roster

	form     FormModel
	list     viewport.Model
	help     help.Model
	helpPage ui.HelpPage
	showHelp bool
	status   string

	keys   keyMap
	styles ui.Styles
	layout ui.LayoutConfig
	ready  bool

	log *zap.Logger
}

// New creates the application model around an existing store.
func New(store *roster.Store, styles ui.Styles) Model {
	if store == nil {
		store = roster.NewStore()
	}

	m := Model{
		store:    store,
		snapshot: store.Snapshot(),
		form:     NewForm(styles, logging.Get(logging.CategoryForm)),
		list:     viewport.New(ui.CardMaxWidth, 10),
		help:     help.New(),
		helpPage: ui.NewHelpPage(styles.Theme, ui.CardMaxWidth),
		keys:     defaultKeyMap(),
		styles:   styles,
		layout:   ui.NewLayoutConfig(ui.CardMaxWidth+2*ui.CardMargin, ui.MinimumTerminalHeight),
		log:      logging.Get(logging.CategoryUI),
	}
	m.refreshList()
	return m
}

// Roster returns the snapshot currently on screen.
func (m Model) Roster() roster.Roster {
	return m.snapshot
}

// Form exposes the form sub-model.
func (m Model) Form() FormModel {
	return m.form
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case AddUserMsg:
		m.snapshot = m.store.Append(msg.Name, msg.Age)
		m.refreshList()
		m.list.GotoBottom()
		snap := m.snapshot
		return m, func() tea.Msg { return RosterChangedMsg{Roster: snap} }

	case RosterChangedMsg:
		if last, ok := msg.Roster.Last(); ok {
			m.status = fmt.Sprintf("Added %s (%d users)", last.Name, msg.Roster.Len())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.log.Info("quit requested", zap.Int("users", m.snapshot.Len()))
		return m, tea.Quit
	}

	// The dialog is modal: nothing else sees keys until it is dismissed.
	if _, open := m.form.Modal(); open {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		if msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown) {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.status = ""
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.layout = ui.NewLayoutConfig(width, height)
	m.ready = true

	cardWidth := m.layout.CardWidth()
	m.form.SetWidth(cardWidth)
	m.help.Width = width
	m.helpPage.SetWidth(cardWidth)
	m.list.Width = cardWidth
	m.refreshList()

	m.log.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("list_height", m.list.Height))
}

// refreshList re-renders the snapshot into the list viewport and sizes the
// viewport to whatever the form leaves free.
func (m *Model) refreshList() {
	cardWidth := m.layout.CardWidth()
	free := m.layout.BodyHeight() - lipgloss.Height(m.form.View()) - 1
	if free < 3 {
		free = 3
	}
	m.list.Height = free
	m.list.SetContent(ui.UsersList(m.styles, m.snapshot, cardWidth))
}
