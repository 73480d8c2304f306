package model

// Video is an instructional video. All videos are publicly readable but
// mutation is ownership-gated, unlike the other entity kinds.
type Video struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Title        string `json:"title" validate:"required,max=128"`
	Description  string `json:"description" validate:"max=4096"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	VideoURL     string `json:"videoUrl" validate:"required,url"`
	Category     string `json:"category" validate:"required"`
	IsPaid       bool   `json:"isPaid,omitempty"`
	IsPinned     bool   `json:"isPinned"`
	CreatedAt    int64  `json:"createdAt"`
}

// VideoDraft is the caller-supplied portion of a new video.
type VideoDraft struct {
	Title        string `validate:"required,max=128"`
	Description  string `validate:"max=4096"`
	ThumbnailURL string `validate:"omitempty,url"`
	VideoURL     string `validate:"required,url"`
	Category     string `validate:"required"`
	IsPaid       bool
	IsPinned     bool
}

// VideoPatch is a partial update with shallow-merge semantics.
type VideoPatch struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	VideoURL     *string
	Category     *string
	IsPaid       *bool
	IsPinned     *bool
}

// Apply merges the patch into the video.
func (p VideoPatch) Apply(v *Video) {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.ThumbnailURL != nil {
		v.ThumbnailURL = *p.ThumbnailURL
	}
	if p.VideoURL != nil {
		v.VideoURL = *p.VideoURL
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.IsPaid != nil {
		v.IsPaid = *p.IsPaid
	}
	if p.IsPinned != nil {
		v.IsPinned = *p.IsPinned
	}
}
