package model

import "sort"

// AirdropRanking is an entry on the admin-curated airdrop leaderboard. It is
// independent of per-user Airdrop records. Rank need not be contiguous.
type AirdropRanking struct {
	ID            string  `json:"id"`
	Rank          int     `json:"rank" validate:"required,min=1"`
	Title         string  `json:"title" validate:"required,max=128"`
	Description   string  `json:"description" validate:"max=4096"`
	FundingAmount string  `json:"fundingAmount"`
	Rewards       string  `json:"rewards"`
	Rating        float64 `json:"rating" validate:"min=1,max=5"`
	DetailsLink   string  `json:"detailsLink,omitempty" validate:"omitempty,url"`
	IsPinned      bool    `json:"isPinned"`
	CreatedAt     int64   `json:"createdAt"`
}

// RankingDraft is the caller-supplied portion of a new ranking entry.
type RankingDraft struct {
	Rank          int     `validate:"required,min=1"`
	Title         string  `validate:"required,max=128"`
	Description   string  `validate:"max=4096"`
	FundingAmount string
	Rewards       string
	Rating        float64 `validate:"min=1,max=5"`
	DetailsLink   string  `validate:"omitempty,url"`
	IsPinned      bool
}

// RankingPatch is a partial update with shallow-merge semantics.
type RankingPatch struct {
	Rank          *int
	Title         *string
	Description   *string
	FundingAmount *string
	Rewards       *string
	Rating        *float64
	DetailsLink   *string
	IsPinned      *bool
}

// Apply merges the patch into the ranking.
func (p RankingPatch) Apply(r *AirdropRanking) {
	if p.Rank != nil {
		r.Rank = *p.Rank
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.FundingAmount != nil {
		r.FundingAmount = *p.FundingAmount
	}
	if p.Rewards != nil {
		r.Rewards = *p.Rewards
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.DetailsLink != nil {
		r.DetailsLink = *p.DetailsLink
	}
	if p.IsPinned != nil {
		r.IsPinned = *p.IsPinned
	}
}

// SortRankings orders entries pinned-first, then by ascending rank.
func SortRankings(rankings []AirdropRanking) {
	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].IsPinned != rankings[j].IsPinned {
			return rankings[i].IsPinned
		}
		return rankings[i].Rank < rankings[j].Rank
	})
}
