package model

// Achievement is an append-only milestone record attached to a user.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	DateEarned  int64  `json:"dateEarned"`
}

// User is a registered account. Role flags gate category, ranking and video
// mutation; everything else is open to any authenticated user.
type User struct {
	ID              string        `json:"id"`
	Email           string        `json:"email" validate:"required,email"`
	Username        string        `json:"username" validate:"required,max=64"`
	Password        string        `json:"password,omitempty"`
	IsAdmin         bool          `json:"isAdmin"`
	CanUploadVideos bool          `json:"canUploadVideos"`
	Level           int           `json:"level"`
	Achievements    []Achievement `json:"achievements"`
}

// Actor is the read-only identity view the domain store depends on.
type Actor struct {
	ID              string
	Username        string
	IsAdmin         bool
	CanUploadVideos bool
}

// Actor returns the user's actor view.
func (u *User) Actor() Actor {
	return Actor{
		ID:              u.ID,
		Username:        u.Username,
		IsAdmin:         u.IsAdmin,
		CanUploadVideos: u.CanUploadVideos,
	}
}

// CanPostVideos reports whether the user may add videos.
func (u *User) CanPostVideos() bool {
	return u.CanUploadVideos || u.IsAdmin
}
