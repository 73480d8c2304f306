package store

import (
	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// Rankings returns a snapshot of the leaderboard, pinned entries first, then
// by ascending rank.
func (s *Store) Rankings() []model.AirdropRanking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AirdropRanking, len(s.rankings))
	copy(out, s.rankings)
	model.SortRankings(out)
	return out
}

// Ranking returns one leaderboard entry by ID.
func (s *Store) Ranking(id string) (model.AirdropRanking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rankings {
		if r.ID == id {
			return r, true
		}
	}
	return model.AirdropRanking{}, false
}

// isAdmin reports whether the current actor holds the admin role.
func (s *Store) isAdmin() bool {
	actor := s.actor()
	return actor != nil && actor.IsAdmin
}

// AddRanking creates a leaderboard entry. Admin only.
func (s *Store) AddRanking(draft model.RankingDraft) *model.AirdropRanking {
	if !s.isAdmin() {
		s.notifyRejected("Ranking not added", "Only admins can manage the leaderboard.")
		return nil
	}
	if err := validate.Struct(draft); err != nil {
		s.notifyRejected("Ranking not added", err.Error())
		return nil
	}
	if err := validate.Rating(draft.Rating); err != nil {
		s.notifyRejected("Ranking not added", err.Error())
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ranking := model.AirdropRanking{
		ID:            model.NewID(),
		Rank:          draft.Rank,
		Title:         draft.Title,
		Description:   draft.Description,
		FundingAmount: draft.FundingAmount,
		Rewards:       draft.Rewards,
		Rating:        draft.Rating,
		DetailsLink:   draft.DetailsLink,
		IsPinned:      draft.IsPinned,
		CreatedAt:     model.Millis(s.clock()),
	}

	s.rankings = append(s.rankings, ranking)
	persist(s.rankingCol, s.rankings)
	s.notifySuccess("Ranking added",
		"\""+ranking.Title+"\" has been added to the leaderboard.")
	logging.Info("ranking added", logging.KeyEntityID, ranking.ID)
	return &ranking
}

// UpdateRanking merges the patch into the matching entry. Admin only. No-op
// if the ID is not found.
func (s *Store) UpdateRanking(id string, patch model.RankingPatch) {
	if !s.isAdmin() {
		s.notifyRejected("Ranking not updated", "Only admins can manage the leaderboard.")
		return
	}
	if patch.Rating != nil {
		if err := validate.Rating(*patch.Rating); err != nil {
			s.notifyRejected("Ranking not updated", err.Error())
			return
		}
	}
	if patch.Rank != nil {
		if err := validate.Rank(*patch.Rank); err != nil {
			s.notifyRejected("Ranking not updated", err.Error())
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rankings {
		if s.rankings[i].ID != id {
			continue
		}
		patch.Apply(&s.rankings[i])
		persist(s.rankingCol, s.rankings)
		s.notifySuccess("Ranking updated", "Your changes have been saved.")
		return
	}
}

// DeleteRanking removes the matching entry. Admin only; no-op if absent.
func (s *Store) DeleteRanking(id string) {
	if !s.isAdmin() {
		s.notifyRejected("Ranking not deleted", "Only admins can manage the leaderboard.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rankings {
		if s.rankings[i].ID != id {
			continue
		}
		s.rankings = append(s.rankings[:i], s.rankings[i+1:]...)
		persist(s.rankingCol, s.rankings)
		s.notifySuccess("Ranking deleted", "The entry has been removed from the leaderboard.")
		return
	}
}

// ToggleRankingPin flips the pinned flag on a leaderboard entry. Admin only.
func (s *Store) ToggleRankingPin(id string) {
	if !s.isAdmin() {
		s.notifyRejected("Ranking not updated", "Only admins can manage the leaderboard.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rankings {
		if s.rankings[i].ID != id {
			continue
		}
		s.rankings[i].IsPinned = !s.rankings[i].IsPinned
		persist(s.rankingCol, s.rankings)
		return
	}
}
