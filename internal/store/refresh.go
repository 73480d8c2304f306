package store

import (
	"time"

	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/storage"
)

// RefreshResult summarizes one pass of the refresh simulation.
type RefreshResult struct {
	// Ran is false when the elapsed-time threshold was not met.
	Ran bool
	// AirdropsCompleted is the number of airdrops marked completed.
	AirdropsCompleted int
	// TestnetsAdvanced is the number of testnets whose progress moved.
	TestnetsAdvanced int
}

// MaybeRefresh runs the refresh simulation if more than the configured
// threshold has elapsed since the last refresh. On first run (no stored
// timestamp) the timestamp is initialized and the simulation is skipped.
func (s *Store) MaybeRefresh() RefreshResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()

	last, err := s.lastRefresh.Load()
	if err != nil {
		if !storage.IsErrKeyNotFound(err) {
			logging.Warn("last-refresh timestamp unreadable, resetting",
				logging.KeyError, err)
		}
		s.saveLastRefresh(now)
		return RefreshResult{}
	}

	if now.UnixMilli()-last < s.refresh.Threshold.Milliseconds() {
		return RefreshResult{}
	}
	return s.runRefresh()
}

// RefreshNow forces a simulation pass regardless of elapsed time.
func (s *Store) RefreshNow() RefreshResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runRefresh()
}

// runRefresh executes one simulation pass. Caller holds the lock.
//
// Incomplete airdrops older than the configured minimum age complete with
// independent probability per item. Incomplete testnets advance progress by
// a random increment, capped at 100, and a proportional prefix of their
// tasks is marked completed. The last-refresh timestamp is updated
// unconditionally, whether or not anything changed.
func (s *Store) runRefresh() RefreshResult {
	now := s.clock()
	nowMillis := model.Millis(now)
	actor := s.actor()

	result := RefreshResult{Ran: true}

	airdropsDirty := false
	minAge := s.refresh.AirdropMinAge.Milliseconds()
	for i := range s.airdrops {
		a := &s.airdrops[i]
		if a.IsCompleted || nowMillis-a.CreatedAt < minAge {
			continue
		}
		if s.rng.Float64() >= s.refresh.AirdropCompleteChance {
			continue
		}
		a.IsCompleted = true
		airdropsDirty = true
		result.AirdropsCompleted++
		if actor != nil && actor.ID == a.UserID {
			s.awardAchievement("Airdrop Completed",
				"Completed the \""+a.Title+"\" airdrop.", "🪂")
		}
	}

	testnetsDirty := false
	for i := range s.testnets {
		t := &s.testnets[i]
		if t.IsCompleted {
			continue
		}
		advance := s.rng.Intn(s.refresh.TestnetMaxAdvance)
		if advance == 0 {
			continue
		}
		progress := t.Progress + advance
		if progress > 100 {
			progress = 100
		}
		t.Progress = progress
		t.IsCompleted = progress == 100
		// Mark a prefix of tasks proportional to the new progress value.
		total := len(t.Tasks)
		for j := range t.Tasks {
			t.Tasks[j].IsCompleted = float64(j)/float64(total)*100 < float64(progress)
		}
		testnetsDirty = true
		result.TestnetsAdvanced++
		if t.IsCompleted && actor != nil && actor.ID == t.UserID {
			s.awardAchievement("Testnet Mastery",
				"Finished every task on the \""+t.Title+"\" testnet.", "🏆")
		}
	}

	if airdropsDirty {
		persist(s.airdropCol, s.airdrops)
	}
	if testnetsDirty {
		persist(s.testnetCol, s.testnets)
	}
	s.saveLastRefresh(now)

	logging.Info("refresh simulation ran",
		"airdrops_completed", result.AirdropsCompleted,
		"testnets_advanced", result.TestnetsAdvanced)
	return result
}

// saveLastRefresh persists the last-refresh timestamp. Caller holds the lock.
func (s *Store) saveLastRefresh(now time.Time) {
	if err := s.lastRefresh.Save(now.UnixMilli()); err != nil {
		logging.Error("persistence write failed",
			logging.KeyStoreKey, model.KeyLastRefresh, logging.KeyError, err)
	}
}

// awardAchievement forwards to the identity provider when one is wired.
func (s *Store) awardAchievement(name, description, icon string) {
	if s.identity == nil {
		return
	}
	s.identity.AwardAchievement(name, description, icon)
}
