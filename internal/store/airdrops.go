package store

import (
	"sort"

	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// Airdrops returns a snapshot of the airdrop collection, pinned entries
// first, newest first within each group.
func (s *Store) Airdrops() []model.Airdrop {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Airdrop, len(s.airdrops))
	copy(out, s.airdrops)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Airdrop returns one airdrop by ID.
func (s *Store) Airdrop(id string) (model.Airdrop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.airdrops {
		if a.ID == id {
			return a, true
		}
	}
	return model.Airdrop{}, false
}

// AddAirdrop creates a new airdrop owned by the current actor. Silently
// no-ops when anonymous: ownership cannot be assigned. Invalid drafts are
// rejected with a notification.
func (s *Store) AddAirdrop(draft model.AirdropDraft) *model.Airdrop {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	if err := validate.Struct(draft); err != nil {
		s.notifyRejected("Airdrop not added", err.Error())
		return nil
	}
	if len(draft.Links) > model.MaxAirdropLinks {
		s.notifyRejected("Airdrop not added", "An airdrop can hold at most 100 links.")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	airdrop := model.Airdrop{
		ID:             model.NewID(),
		UserID:         actor.ID,
		Title:          draft.Title,
		Category:       draft.Category,
		Description:    draft.Description,
		Links:          draft.Links,
		FundingAmount:  draft.FundingAmount,
		Rewards:        draft.Rewards,
		TimeCommitment: draft.TimeCommitment,
		WorkRequired:   draft.WorkRequired,
		IsCompleted:    draft.IsCompleted,
		IsPinned:       draft.IsPinned,
		CreatedAt:      model.Millis(s.clock()),
	}

	s.airdrops = append(s.airdrops, airdrop)
	persist(s.airdropCol, s.airdrops)
	s.notifySuccess("Airdrop added",
		"\""+airdrop.Title+"\" has been added to your airdrops.")
	logging.Info("airdrop added",
		logging.KeyEntityID, airdrop.ID, logging.KeyUser, actor.Username)
	return &airdrop
}

// UpdateAirdrop merges the patch into the matching airdrop. No-op if the ID
// is not found. Ownership is deliberately not checked here: any
// authenticated actor may edit any airdrop.
func (s *Store) UpdateAirdrop(id string, patch model.AirdropPatch) {
	if patch.Links != nil && len(*patch.Links) > model.MaxAirdropLinks {
		s.notifyRejected("Airdrop not updated", "An airdrop can hold at most 100 links.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.airdrops {
		if s.airdrops[i].ID != id {
			continue
		}
		patch.Apply(&s.airdrops[i])
		persist(s.airdropCol, s.airdrops)
		s.notifySuccess("Airdrop updated", "Your changes have been saved.")
		return
	}
}

// DeleteAirdrop removes the matching airdrop. No-op if absent; there is no
// tombstone.
func (s *Store) DeleteAirdrop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.airdrops {
		if s.airdrops[i].ID != id {
			continue
		}
		s.airdrops = append(s.airdrops[:i], s.airdrops[i+1:]...)
		persist(s.airdropCol, s.airdrops)
		s.notifySuccess("Airdrop deleted", "The airdrop has been removed from your list.")
		return
	}
}

// AddAirdropLink appends a link to an airdrop, enforcing the 100-link cap.
func (s *Store) AddAirdropLink(airdropID, name, url string) {
	if err := validate.NonEmpty("link name", name); err != nil {
		s.notifyRejected("Link not added", err.Error())
		return
	}
	if err := validate.URL(url); err != nil {
		s.notifyRejected("Link not added", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.airdrops {
		if s.airdrops[i].ID != airdropID {
			continue
		}
		if len(s.airdrops[i].Links) >= model.MaxAirdropLinks {
			s.notifyRejected("Link not added", "An airdrop can hold at most 100 links.")
			return
		}
		s.airdrops[i].Links = append(s.airdrops[i].Links, model.AirdropLink{
			ID:   model.NewID(),
			Name: name,
			URL:  url,
		})
		persist(s.airdropCol, s.airdrops)
		s.notifySuccess("Link added", "\""+name+"\" has been added.")
		return
	}
}

// ToggleAirdropPin flips the pinned flag on an airdrop.
func (s *Store) ToggleAirdropPin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.airdrops {
		if s.airdrops[i].ID != id {
			continue
		}
		s.airdrops[i].IsPinned = !s.airdrops[i].IsPinned
		persist(s.airdropCol, s.airdrops)
		return
	}
}
