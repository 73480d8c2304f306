package model

// AirdropLink is a named URL attached to an airdrop.
type AirdropLink struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=128"`
	URL  string `json:"url" validate:"required,url"`
}

// Airdrop is a tracked opportunity to receive free tokens for completing
// specified actions.
type Airdrop struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	Title          string        `json:"title" validate:"required,max=128"`
	Category       string        `json:"category" validate:"required"`
	Description    string        `json:"description" validate:"max=4096"`
	Links          []AirdropLink `json:"links" validate:"max=100,dive"`
	FundingAmount  string        `json:"fundingAmount"`
	Rewards        string        `json:"rewards"`
	TimeCommitment string        `json:"timeCommitment"`
	WorkRequired   string        `json:"workRequired"`
	IsCompleted    bool          `json:"isCompleted"`
	IsPinned       bool          `json:"isPinned"`
	CreatedAt      int64         `json:"createdAt"`
}

// AirdropDraft is the caller-supplied portion of a new airdrop. ID, owner
// and creation timestamp are assigned by the store.
type AirdropDraft struct {
	Title          string        `validate:"required,max=128"`
	Category       string        `validate:"required"`
	Description    string        `validate:"max=4096"`
	Links          []AirdropLink `validate:"max=100,dive"`
	FundingAmount  string
	Rewards        string
	TimeCommitment string
	WorkRequired   string
	IsCompleted    bool
	IsPinned       bool
}

// AirdropPatch is a partial update. Nil fields are left unchanged; slice
// fields are replaced wholesale, never deep-merged.
type AirdropPatch struct {
	Title          *string
	Category       *string
	Description    *string
	Links          *[]AirdropLink
	FundingAmount  *string
	Rewards        *string
	TimeCommitment *string
	WorkRequired   *string
	IsCompleted    *bool
	IsPinned       *bool
}

// Apply merges the patch into the airdrop. Shallow merge: every set field
// overwrites the current value.
func (p AirdropPatch) Apply(a *Airdrop) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Links != nil {
		a.Links = *p.Links
	}
	if p.FundingAmount != nil {
		a.FundingAmount = *p.FundingAmount
	}
	if p.Rewards != nil {
		a.Rewards = *p.Rewards
	}
	if p.TimeCommitment != nil {
		a.TimeCommitment = *p.TimeCommitment
	}
	if p.WorkRequired != nil {
		a.WorkRequired = *p.WorkRequired
	}
	if p.IsCompleted != nil {
		a.IsCompleted = *p.IsCompleted
	}
	if p.IsPinned != nil {
		a.IsPinned = *p.IsPinned
	}
}
