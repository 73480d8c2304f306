package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/store"
)

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// refreshDoneMsg is sent after a forced refresh pass.
type refreshDoneMsg store.RefreshResult

// view cycles through the entity list panels.
type view int

const (
	viewTestnets view = iota
	viewAirdrops
	viewCount
)

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	store *store.Store

	// Data snapshots
	stats    store.Stats
	testnets []model.Testnet
	airdrops []model.Airdrop

	// UI state
	active     view
	width      int
	height     int
	message    string
	messageExp time.Time

	// Configuration
	tickInterval time.Duration
	maxRows      int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Store        *store.Store
	TickInterval time.Duration
	MaxRows      int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.TickInterval == 0 {
		config.TickInterval = time.Second
	}
	if config.MaxRows == 0 {
		config.MaxRows = 5
	}

	m := &DashboardModel{
		store:        config.Store,
		tickInterval: config.TickInterval,
		maxRows:      config.MaxRows,
	}
	m.loadData()
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages and keep the snapshots fresh.
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshDoneMsg:
		m.loadData()
		m.setMessage(fmt.Sprintf("Refreshed: %d airdrops completed, %d testnets advanced",
			msg.AirdropsCompleted, msg.TestnetsAdvanced), 3*time.Second)
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		// Force a refresh pass out of band of the hourly timer.
		return m, func() tea.Msg {
			return refreshDoneMsg(m.store.RefreshNow())
		}

	case "tab":
		m.active = (m.active + 1) % viewCount
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, NewOverviewComponent(m.stats, m.width).View())

	switch m.active {
	case viewAirdrops:
		sections = append(sections, NewAirdropsComponent(m.airdrops, m.width, m.maxRows).View())
	default:
		sections = append(sections, NewTestnetsComponent(m.testnets, m.width, m.maxRows).View())
	}

	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Droptrack Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// loadData takes fresh snapshots from the store.
func (m *DashboardModel) loadData() {
	m.stats = m.store.Stats()
	m.testnets = m.store.Testnets()
	m.airdrops = m.store.Airdrops()
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
