package model

import "math"

// TestnetTask is a discrete step within a testnet participation record.
type TestnetTask struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,max=128"`
	URL         string `json:"url" validate:"omitempty,url"`
	IsCompleted bool   `json:"isCompleted"`
}

// Testnet is a tracked participation record in a pre-production blockchain
// network, composed of discrete tasks. Progress and IsCompleted are derived
// from the task list and never independently settable.
type Testnet struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Title       string        `json:"title" validate:"required,max=128"`
	Category    string        `json:"category" validate:"required"`
	Description string        `json:"description" validate:"max=4096"`
	Progress    int           `json:"progress"`
	Rewards     string        `json:"rewards"`
	Tasks       []TestnetTask `json:"tasks" validate:"max=50,dive"`
	IsCompleted bool          `json:"isCompleted"`
	IsPinned    bool          `json:"isPinned"`
	CreatedAt   int64         `json:"createdAt"`
}

// RecomputeProgress re-derives Progress and IsCompleted from the task list.
// With no tasks, the prior progress value is kept (division-by-zero guard).
func (t *Testnet) RecomputeProgress() {
	if len(t.Tasks) == 0 {
		t.IsCompleted = t.Progress == 100
		return
	}
	completed := 0
	for _, task := range t.Tasks {
		if task.IsCompleted {
			completed++
		}
	}
	t.Progress = int(math.Round(float64(completed) / float64(len(t.Tasks)) * 100))
	t.IsCompleted = t.Progress == 100
}

// CompletedTasks returns the number of completed tasks.
func (t *Testnet) CompletedTasks() int {
	n := 0
	for _, task := range t.Tasks {
		if task.IsCompleted {
			n++
		}
	}
	return n
}

// TestnetDraft is the caller-supplied portion of a new testnet.
type TestnetDraft struct {
	Title       string        `validate:"required,max=128"`
	Category    string        `validate:"required"`
	Description string        `validate:"max=4096"`
	Rewards     string
	Tasks       []TestnetTask `validate:"max=50,dive"`
	IsPinned    bool
}

// TestnetPatch is a partial update. Progress and IsCompleted are absent on
// purpose: they are recomputed from Tasks whenever Tasks is replaced.
type TestnetPatch struct {
	Title       *string
	Category    *string
	Description *string
	Rewards     *string
	Tasks       *[]TestnetTask
	IsPinned    *bool
}

// Apply merges the patch into the testnet and recomputes derived progress
// when the task list was replaced.
func (p TestnetPatch) Apply(t *Testnet) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Rewards != nil {
		t.Rewards = *p.Rewards
	}
	if p.Tasks != nil {
		t.Tasks = *p.Tasks
		t.RecomputeProgress()
	}
	if p.IsPinned != nil {
		t.IsPinned = *p.IsPinned
	}
}
