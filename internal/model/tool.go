package model

// Tool is a curated external resource (explorer, faucet, portfolio tracker).
type Tool struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title" validate:"required,max=128"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"max=4096"`
	URL         string `json:"url" validate:"required,url"`
	CreatedAt   int64  `json:"createdAt"`
	IsPinned    bool   `json:"isPinned"`

	// Optional extensions carried by later data; not part of the required
	// invariants.
	Difficulty string `json:"difficulty,omitempty"`
	LogoURL    string `json:"logoUrl,omitempty"`
	IsPaid     bool   `json:"isPaid,omitempty"`
}

// ToolDraft is the caller-supplied portion of a new tool.
type ToolDraft struct {
	Title       string `validate:"required,max=128"`
	Category    string `validate:"required"`
	Description string `validate:"max=4096"`
	URL         string `validate:"required,url"`
	IsPinned    bool
	Difficulty  string
	LogoURL     string
	IsPaid      bool
}

// ToolPatch is a partial update with shallow-merge semantics.
type ToolPatch struct {
	Title       *string
	Category    *string
	Description *string
	URL         *string
	IsPinned    *bool
	Difficulty  *string
	LogoURL     *string
	IsPaid      *bool
}

// Apply merges the patch into the tool.
func (p ToolPatch) Apply(t *Tool) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.URL != nil {
		t.URL = *p.URL
	}
	if p.IsPinned != nil {
		t.IsPinned = *p.IsPinned
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	if p.LogoURL != nil {
		t.LogoURL = *p.LogoURL
	}
	if p.IsPaid != nil {
		t.IsPaid = *p.IsPaid
	}
}
