package store

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/config"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/notify"
)

func newRefreshStore(t *testing.T, identity Identity, refresh config.RefreshConfig) (*Store, *testClock) {
	t.Helper()
	kv := newTestKV(t)
	clock := &testClock{now: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)}
	s, err := New(Options{
		KV:       kv,
		Identity: identity,
		Notifier: notify.NewMemorySink(),
		Clock:    clock.Now,
		Rand:     rand.New(rand.NewSource(1)),
		Refresh:  refresh,
	})
	require.NoError(t, err)
	return s, clock
}

func alwaysComplete() config.RefreshConfig {
	cfg := config.DefaultRuntimeConfig().Refresh
	cfg.AirdropCompleteChance = 1.0
	return cfg
}

func neverAdvance() config.RefreshConfig {
	cfg := config.DefaultRuntimeConfig().Refresh
	cfg.AirdropCompleteChance = 0
	// Intn(1) is always zero, so testnets never move.
	cfg.TestnetMaxAdvance = 1
	return cfg
}

func TestMaybeRefreshInitializesTimestampWithoutRunning(t *testing.T) {
	s, _ := newRefreshStore(t, authedUser(), alwaysComplete())

	res := s.MaybeRefresh()
	assert.False(t, res.Ran)

	last, err := s.lastRefresh.Load()
	require.NoError(t, err)
	assert.Equal(t, s.clock().UnixMilli(), last)
}

func TestMaybeRefreshHonorsThreshold(t *testing.T) {
	s, clock := newRefreshStore(t, authedUser(), alwaysComplete())

	s.MaybeRefresh() // initialize

	clock.Advance(23 * time.Hour)
	assert.False(t, s.MaybeRefresh().Ran)

	clock.Advance(2 * time.Hour)
	assert.True(t, s.MaybeRefresh().Ran)

	// The timestamp moved, so an immediate second pass is skipped.
	assert.False(t, s.MaybeRefresh().Ran)
}

func TestRefreshCompletesOldAirdrops(t *testing.T) {
	id := authedUser()
	s, clock := newRefreshStore(t, id, alwaysComplete())

	a := s.AddAirdrop(validAirdropDraft())
	require.NotNil(t, a)

	// Too young on day one.
	res := s.RefreshNow()
	assert.True(t, res.Ran)
	got, _ := s.Airdrop(a.ID)
	assert.False(t, got.IsCompleted)

	// Old enough after four days; probability forced to 1.
	clock.Advance(4 * 24 * time.Hour)
	res = s.RefreshNow()
	assert.Positive(t, res.AirdropsCompleted)
	got, _ = s.Airdrop(a.ID)
	assert.True(t, got.IsCompleted)

	// Owned by the actor, so the achievement fired.
	assert.Contains(t, id.awards, "Airdrop Completed")
}

func TestRefreshSkipsUnownedAchievements(t *testing.T) {
	id := authedUser()
	s, clock := newRefreshStore(t, id, alwaysComplete())

	// Only seed airdrops exist, owned by the shared sentinel.
	clock.Advance(10 * 24 * time.Hour)
	res := s.RefreshNow()
	assert.Positive(t, res.AirdropsCompleted)
	assert.Empty(t, id.awards)
}

func TestRefreshMonotonicTestnetProgress(t *testing.T) {
	s, _ := newRefreshStore(t, authedUser(), alwaysComplete())

	for pass := 0; pass < 50; pass++ {
		before := map[string]int{}
		for _, tn := range s.Testnets() {
			before[tn.ID] = tn.Progress
		}
		s.RefreshNow()
		for _, tn := range s.Testnets() {
			assert.GreaterOrEqual(t, tn.Progress, before[tn.ID])
			assert.LessOrEqual(t, tn.Progress, 100)
			assert.Equal(t, tn.Progress == 100, tn.IsCompleted)
		}
	}
}

func TestRefreshMarksProportionalTaskPrefix(t *testing.T) {
	s, _ := newRefreshStore(t, authedUser(), alwaysComplete())

	// Drive every testnet to completion; with increments in [0,20) this
	// converges in far fewer than 200 passes.
	for pass := 0; pass < 200; pass++ {
		s.RefreshNow()
	}

	for _, tn := range s.Testnets() {
		require.Equal(t, 100, tn.Progress)
		assert.True(t, tn.IsCompleted)
		for _, task := range tn.Tasks {
			assert.True(t, task.IsCompleted)
		}
	}
}

func TestRefreshTestnetMasteryAchievement(t *testing.T) {
	id := authedUser()
	s, _ := newRefreshStore(t, id, alwaysComplete())

	tn := s.AddTestnet(model.TestnetDraft{
		Title:    "Nearly There",
		Category: "Galxe Testnet",
		Tasks: []model.TestnetTask{
			{ID: "t1", Name: "a", IsCompleted: true},
			{ID: "t2", Name: "b"},
		},
	})
	require.NotNil(t, tn)

	for pass := 0; pass < 200; pass++ {
		s.RefreshNow()
	}

	got, _ := s.Testnet(tn.ID)
	assert.True(t, got.IsCompleted)
	assert.Contains(t, id.awards, "Testnet Mastery")
}

func TestRefreshWithNeutralizedRandomnessChangesNothing(t *testing.T) {
	s, clock := newRefreshStore(t, authedUser(), neverAdvance())

	clock.Advance(10 * 24 * time.Hour)
	airdropsBefore := s.Airdrops()
	testnetsBefore := s.Testnets()

	res := s.RefreshNow()
	assert.True(t, res.Ran)
	assert.Zero(t, res.AirdropsCompleted)
	assert.Zero(t, res.TestnetsAdvanced)
	assert.Equal(t, airdropsBefore, s.Airdrops())
	assert.Equal(t, testnetsBefore, s.Testnets())
}

func TestRefreshUpdatesTimestampUnconditionally(t *testing.T) {
	s, clock := newRefreshStore(t, authedUser(), neverAdvance())

	clock.Advance(time.Hour)
	s.RefreshNow()

	last, err := s.lastRefresh.Load()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().UnixMilli(), last)
}

func TestRefreshPersistsChangedCollections(t *testing.T) {
	kv := newTestKV(t)
	clock := &testClock{now: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)}
	id := authedUser()
	s1, err := New(Options{
		KV:       kv,
		Identity: id,
		Notifier: notify.Discard,
		Clock:    clock.Now,
		Rand:     rand.New(rand.NewSource(7)),
		Refresh:  alwaysComplete(),
	})
	require.NoError(t, err)

	clock.Advance(10 * 24 * time.Hour)
	s1.RefreshNow()

	s2, err := New(Options{KV: kv, Identity: id, Clock: clock.Now})
	require.NoError(t, err)
	assert.Equal(t, s1.Airdrops(), s2.Airdrops())
	assert.Equal(t, s1.Testnets(), s2.Testnets())
}
