package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/store"
)

func tempPIDFile(t *testing.T) *PIDFile {
	t.Helper()
	return &PIDFile{path: filepath.Join(t.TempDir(), "test.pid")}
}

func TestPIDFileWriteReadRemove(t *testing.T) {
	p := tempPIDFile(t)

	require.NoError(t, p.WritePID(12345))
	assert.True(t, p.Exists())

	pid, err := p.Read()
	require.NoError(t, err)
	assert.Equal(t, 12345, pid)

	require.NoError(t, p.Remove())
	assert.False(t, p.Exists())

	// Removing twice is fine.
	require.NoError(t, p.Remove())
}

func TestPIDFileReadMissing(t *testing.T) {
	p := tempPIDFile(t)

	_, err := p.Read()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestPIDFileReadGarbage(t *testing.T) {
	p := tempPIDFile(t)
	require.NoError(t, os.WriteFile(p.path, []byte("not-a-pid"), 0644))

	_, err := p.Read()
	assert.Error(t, err)
}

func TestPIDFileIsRunningSelf(t *testing.T) {
	p := tempPIDFile(t)
	require.NoError(t, p.Write())

	assert.True(t, p.IsRunning())
	assert.Equal(t, os.Getpid(), p.GetRunningPID())
}

func TestIsProcessRunning(t *testing.T) {
	assert.True(t, IsProcessRunning(os.Getpid()))
	assert.False(t, IsProcessRunning(0))
	assert.False(t, IsProcessRunning(-1))
}

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics()

	// Skipped ticks count as ticks, not passes.
	m.Record(store.RefreshResult{})
	m.Record(store.RefreshResult{Ran: true, AirdropsCompleted: 2, TestnetsAdvanced: 3})
	m.Record(store.RefreshResult{Ran: true, TestnetsAdvanced: 1})

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TicksTotal)
	assert.Equal(t, int64(2), snap.PassesRun)
	assert.Equal(t, int64(2), snap.AirdropsCompletedTotal)
	assert.Equal(t, int64(4), snap.TestnetsAdvancedTotal)
	assert.False(t, snap.LastPassAt.IsZero())
}

func TestMetricsJSON(t *testing.T) {
	m := NewMetrics()
	m.Record(store.RefreshResult{Ran: true})

	data, err := m.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "passes_run")
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 30*time.Minute, "2h 30m"},
		{26 * time.Hour, "1d 2h"},
		{48 * time.Hour, "2d"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatUptime(tc.d))
	}
}
