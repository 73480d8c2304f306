package store

import (
	"sort"

	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// Tools returns a snapshot of the tool collection, pinned entries first,
// newest first within each group.
func (s *Store) Tools() []model.Tool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Tool, len(s.tools))
	copy(out, s.tools)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Tool returns one tool by ID.
func (s *Store) Tool(id string) (model.Tool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tool := range s.tools {
		if tool.ID == id {
			return tool, true
		}
	}
	return model.Tool{}, false
}

// AddTool creates a new tool owned by the current actor.
func (s *Store) AddTool(draft model.ToolDraft) *model.Tool {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	if err := validate.Struct(draft); err != nil {
		s.notifyRejected("Tool not added", err.Error())
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tool := model.Tool{
		ID:          model.NewID(),
		UserID:      actor.ID,
		Title:       draft.Title,
		Category:    draft.Category,
		Description: draft.Description,
		URL:         draft.URL,
		IsPinned:    draft.IsPinned,
		Difficulty:  draft.Difficulty,
		LogoURL:     draft.LogoURL,
		IsPaid:      draft.IsPaid,
		CreatedAt:   model.Millis(s.clock()),
	}

	s.tools = append(s.tools, tool)
	persist(s.toolCol, s.tools)
	s.notifySuccess("Tool added",
		"\""+tool.Title+"\" has been added to your tools.")
	logging.Info("tool added",
		logging.KeyEntityID, tool.ID, logging.KeyUser, actor.Username)
	return &tool
}

// UpdateTool merges the patch into the matching tool. No-op if the ID is
// not found. Ownership is deliberately not checked.
func (s *Store) UpdateTool(id string, patch model.ToolPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tools {
		if s.tools[i].ID != id {
			continue
		}
		patch.Apply(&s.tools[i])
		persist(s.toolCol, s.tools)
		s.notifySuccess("Tool updated", "Your changes have been saved.")
		return
	}
}

// DeleteTool removes the matching tool. No-op if absent.
func (s *Store) DeleteTool(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tools {
		if s.tools[i].ID != id {
			continue
		}
		s.tools = append(s.tools[:i], s.tools[i+1:]...)
		persist(s.toolCol, s.tools)
		s.notifySuccess("Tool deleted", "The tool has been removed from your list.")
		return
	}
}

// ToggleToolPin flips the pinned flag on a tool.
func (s *Store) ToggleToolPin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tools {
		if s.tools[i].ID != id {
			continue
		}
		s.tools[i].IsPinned = !s.tools[i].IsPinned
		persist(s.toolCol, s.tools)
		return
	}
}
