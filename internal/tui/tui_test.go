package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/storage"
	"github.com/cryptopilot/droptrack/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := store.New(store.Options{KV: db, Notifier: notify.Discard})
	require.NoError(t, err)
	return s
}

func TestNewDashboardModelDefaults(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Store: newTestStore(t)})

	assert.Equal(t, time.Second, m.tickInterval)
	assert.Equal(t, 5, m.maxRows)
	// Snapshots are loaded eagerly so the first frame has data.
	assert.Len(t, m.testnets, 2)
	assert.Len(t, m.airdrops, 2)
}

func TestDashboardViewBeforeSize(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Store: newTestStore(t)})
	assert.Equal(t, "Loading...", m.View())
}

func TestDashboardViewRendersSections(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Store: newTestStore(t)})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(*DashboardModel)

	view := m.View()
	assert.Contains(t, view, "Droptrack Dashboard")
	assert.Contains(t, view, "Your Progress")
	assert.Contains(t, view, "Testnet Progress")
	assert.Contains(t, view, "Taiko Testnet")
}

func TestDashboardTabCyclesViews(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Store: newTestStore(t)})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(*DashboardModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*DashboardModel)

	view := m.View()
	assert.Contains(t, view, "Airdrops")
	assert.Contains(t, view, "Arbitrum Airdrop")
}

func TestDashboardQuitKeys(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Store: newTestStore(t)})

	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			var msg tea.KeyMsg
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestDashboardRefreshKey(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{Store: newTestStore(t)})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(refreshDoneMsg)
	require.True(t, ok)
	assert.True(t, store.RefreshResult(res).Ran)
}

func TestOverviewComponentView(t *testing.T) {
	oc := NewOverviewComponent(store.Stats{
		TotalAirdrops:     3,
		CompletedAirdrops: 1,
		ActiveTestnets:    2,
		DailyTasks:        2,
		OverallProgress:   20,
	}, 80)

	view := oc.View()
	assert.Contains(t, view, "Your Progress")
	assert.Contains(t, view, "20%")
}

func TestTestnetsComponentEmpty(t *testing.T) {
	tc := NewTestnetsComponent(nil, 80, 5)
	assert.Contains(t, tc.View(), "No testnets yet")
}

func TestTestnetsComponentLimit(t *testing.T) {
	testnets := make([]model.Testnet, 8)
	for i := range testnets {
		testnets[i] = model.Testnet{Title: "tn", Progress: 10}
	}
	tc := NewTestnetsComponent(testnets, 80, 5)
	assert.Len(t, tc.Testnets, 5)
}

func TestAirdropsComponentMarksCompleted(t *testing.T) {
	ac := NewAirdropsComponent([]model.Airdrop{
		{Title: "Done Drop", IsCompleted: true},
		{Title: "Open Drop"},
	}, 80, 5)

	view := ac.View()
	assert.Contains(t, view, "Done Drop")
	assert.Contains(t, view, "✓")
}
