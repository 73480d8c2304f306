package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeProgress(t *testing.T) {
	tests := []struct {
		name          string
		completed     int
		total         int
		wantProgress  int
		wantCompleted bool
	}{
		{"one_of_four", 1, 4, 25, false},
		{"two_of_four", 2, 4, 50, false},
		{"all_of_four", 4, 4, 100, true},
		{"one_of_three", 1, 3, 33, false},
		{"two_of_three", 2, 3, 67, false},
		{"none", 0, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := &Testnet{}
			for i := 0; i < tt.total; i++ {
				tn.Tasks = append(tn.Tasks, TestnetTask{
					ID:          NewID(),
					Name:        "task",
					IsCompleted: i < tt.completed,
				})
			}
			tn.RecomputeProgress()
			assert.Equal(t, tt.wantProgress, tn.Progress)
			assert.Equal(t, tt.wantCompleted, tn.IsCompleted)
		})
	}
}

func TestRecomputeProgressEmptyTasksKeepsPrior(t *testing.T) {
	tn := &Testnet{Progress: 60}
	tn.RecomputeProgress()
	assert.Equal(t, 60, tn.Progress)
	assert.False(t, tn.IsCompleted)
}

func TestAirdropPatchShallowMerge(t *testing.T) {
	a := &Airdrop{
		Title:       "Arbitrum Airdrop",
		Category:    "Layer 1 & Testnet Mainnet",
		Description: "original",
		Links: []AirdropLink{
			{ID: "1", Name: "Official Website", URL: "https://arbitrum.io/"},
		},
	}

	title := "Arbitrum Odyssey"
	links := []AirdropLink{
		{ID: "2", Name: "Bridge", URL: "https://bridge.arbitrum.io/"},
	}
	AirdropPatch{Title: &title, Links: &links}.Apply(a)

	assert.Equal(t, "Arbitrum Odyssey", a.Title)
	assert.Equal(t, "original", a.Description, "unset fields stay untouched")
	// Slice fields are replaced wholesale, not merged.
	assert.Len(t, a.Links, 1)
	assert.Equal(t, "Bridge", a.Links[0].Name)
}

func TestTestnetPatchRecomputesOnTaskReplace(t *testing.T) {
	tn := &Testnet{Progress: 10}
	tasks := []TestnetTask{
		{ID: "1", Name: "Bridge", IsCompleted: true},
		{ID: "2", Name: "Swap", IsCompleted: false},
	}
	TestnetPatch{Tasks: &tasks}.Apply(tn)

	assert.Equal(t, 50, tn.Progress)
	assert.False(t, tn.IsCompleted)
}

func TestSortRankings(t *testing.T) {
	rankings := []AirdropRanking{
		{ID: "a", Rank: 3},
		{ID: "b", Rank: 1},
		{ID: "c", Rank: 2, IsPinned: true},
	}
	SortRankings(rankings)

	assert.Equal(t, "c", rankings[0].ID, "pinned entries sort first")
	assert.Equal(t, "b", rankings[1].ID)
	assert.Equal(t, "a", rankings[2].ID)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
