package store

import (
	"sort"

	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// Testnets returns a snapshot of the testnet collection, pinned entries
// first, newest first within each group.
func (s *Store) Testnets() []model.Testnet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Testnet, len(s.testnets))
	copy(out, s.testnets)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Testnet returns one testnet by ID.
func (s *Store) Testnet(id string) (model.Testnet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.testnets {
		if t.ID == id {
			return t, true
		}
	}
	return model.Testnet{}, false
}

// AddTestnet creates a new testnet owned by the current actor. Progress is
// derived from the submitted task list, never taken from the draft.
func (s *Store) AddTestnet(draft model.TestnetDraft) *model.Testnet {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	if err := validate.Struct(draft); err != nil {
		s.notifyRejected("Testnet not added", err.Error())
		return nil
	}
	if len(draft.Tasks) > model.MaxTestnetTasks {
		s.notifyRejected("Testnet not added", "A testnet can hold at most 50 tasks.")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]model.TestnetTask, len(draft.Tasks))
	copy(tasks, draft.Tasks)
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = model.NewID()
		}
	}

	testnet := model.Testnet{
		ID:          model.NewID(),
		UserID:      actor.ID,
		Title:       draft.Title,
		Category:    draft.Category,
		Description: draft.Description,
		Rewards:     draft.Rewards,
		Tasks:       tasks,
		IsPinned:    draft.IsPinned,
		CreatedAt:   model.Millis(s.clock()),
	}
	testnet.RecomputeProgress()

	s.testnets = append(s.testnets, testnet)
	persist(s.testnetCol, s.testnets)
	s.notifySuccess("Testnet added",
		"\""+testnet.Title+"\" has been added to your testnets.")
	logging.Info("testnet added",
		logging.KeyEntityID, testnet.ID, logging.KeyUser, actor.Username)
	return &testnet
}

// UpdateTestnet merges the patch into the matching testnet. Replacing the
// task list recomputes progress; progress is never settable directly. No-op
// if the ID is not found.
func (s *Store) UpdateTestnet(id string, patch model.TestnetPatch) {
	if patch.Tasks != nil && len(*patch.Tasks) > model.MaxTestnetTasks {
		s.notifyRejected("Testnet not updated", "A testnet can hold at most 50 tasks.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.testnets {
		if s.testnets[i].ID != id {
			continue
		}
		patch.Apply(&s.testnets[i])
		persist(s.testnetCol, s.testnets)
		s.notifySuccess("Testnet updated", "Your changes have been saved.")
		return
	}
}

// DeleteTestnet removes the matching testnet. No-op if absent.
func (s *Store) DeleteTestnet(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.testnets {
		if s.testnets[i].ID != id {
			continue
		}
		s.testnets = append(s.testnets[:i], s.testnets[i+1:]...)
		persist(s.testnetCol, s.testnets)
		s.notifySuccess("Testnet deleted", "The testnet has been removed from your list.")
		return
	}
}

// UpdateTestnetTask sets one task's completion flag and recomputes the
// testnet's derived progress. This is the only path by which task edits
// change progress. No-op if the testnet or task is not found.
func (s *Store) UpdateTestnetTask(testnetID, taskID string, isCompleted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.testnets {
		if s.testnets[i].ID != testnetID {
			continue
		}
		for j := range s.testnets[i].Tasks {
			if s.testnets[i].Tasks[j].ID != taskID {
				continue
			}
			s.testnets[i].Tasks[j].IsCompleted = isCompleted
			s.testnets[i].RecomputeProgress()
			persist(s.testnetCol, s.testnets)
			return
		}
		return
	}
}

// AddTestnetTask appends a task to a testnet, enforcing the 50-task cap,
// and recomputes progress.
func (s *Store) AddTestnetTask(testnetID, name, url string) {
	if err := validate.NonEmpty("task name", name); err != nil {
		s.notifyRejected("Task not added", err.Error())
		return
	}
	if err := validate.OptionalURL(url); err != nil {
		s.notifyRejected("Task not added", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.testnets {
		if s.testnets[i].ID != testnetID {
			continue
		}
		if len(s.testnets[i].Tasks) >= model.MaxTestnetTasks {
			s.notifyRejected("Task not added", "A testnet can hold at most 50 tasks.")
			return
		}
		s.testnets[i].Tasks = append(s.testnets[i].Tasks, model.TestnetTask{
			ID:   model.NewID(),
			Name: name,
			URL:  url,
		})
		s.testnets[i].RecomputeProgress()
		persist(s.testnetCol, s.testnets)
		s.notifySuccess("Task added", "\""+name+"\" has been added.")
		return
	}
}

// ToggleTestnetPin flips the pinned flag on a testnet.
func (s *Store) ToggleTestnetPin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.testnets {
		if s.testnets[i].ID != id {
			continue
		}
		s.testnets[i].IsPinned = !s.testnets[i].IsPinned
		persist(s.testnetCol, s.testnets)
		return
	}
}
