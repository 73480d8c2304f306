package store

import (
	"math"

	"github.com/cryptopilot/droptrack/internal/model"
)

// Stats is the dashboard aggregate over the current actor's records. Seed
// records count as the actor's own.
type Stats struct {
	TotalAirdrops     int
	CompletedAirdrops int
	TotalTestnets     int
	ActiveTestnets    int
	DailyTasks        int
	TotalTools        int
	TotalVideos       int

	// OverallProgress is the completed share of airdrops plus testnets,
	// rounded to a whole percentage. Zero when there are no records.
	OverallProgress int
}

// Stats computes the dashboard aggregates for the current actor. Anonymous
// callers see only the shared seed records.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	actorID := model.SeedUserID
	if actor := s.actor(); actor != nil {
		actorID = actor.ID
	}
	mine := func(userID string) bool {
		return userID == actorID || userID == model.SeedUserID
	}

	var st Stats
	completedItems := 0

	for _, a := range s.airdrops {
		if !mine(a.UserID) {
			continue
		}
		st.TotalAirdrops++
		if a.IsCompleted {
			st.CompletedAirdrops++
			completedItems++
		}
	}
	for _, t := range s.testnets {
		if !mine(t.UserID) {
			continue
		}
		st.TotalTestnets++
		if t.IsCompleted {
			completedItems++
		} else {
			st.ActiveTestnets++
		}
		if t.Progress < 100 {
			st.DailyTasks++
		}
	}
	for _, tool := range s.tools {
		if mine(tool.UserID) {
			st.TotalTools++
		}
	}
	for _, v := range s.videos {
		if mine(v.UserID) {
			st.TotalVideos++
		}
	}

	if total := st.TotalAirdrops + st.TotalTestnets; total > 0 {
		st.OverallProgress = int(math.Round(float64(completedItems) / float64(total) * 100))
	}
	return st
}
