package store

import (
	"sort"

	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// Videos returns a snapshot of the video collection, pinned entries first,
// newest first within each group. All videos are publicly readable.
func (s *Store) Videos() []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Video, len(s.videos))
	copy(out, s.videos)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Video returns one video by ID.
func (s *Store) Video(id string) (model.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.videos {
		if v.ID == id {
			return v, true
		}
	}
	return model.Video{}, false
}

// canMutateVideo applies the video ownership gate: the actor must own the
// video or be an admin. Unlike airdrops, testnets and tools, video mutation
// is ownership-gated.
func canMutateVideo(actor *model.Actor, video *model.Video) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin || actor.ID == video.UserID
}

// AddVideo creates a new video. Requires the video-creator or admin role.
func (s *Store) AddVideo(draft model.VideoDraft) *model.Video {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	if !actor.CanUploadVideos && !actor.IsAdmin {
		s.notifyRejected("Video not added", "You don't have permission to upload videos.")
		return nil
	}
	if err := validate.Struct(draft); err != nil {
		s.notifyRejected("Video not added", err.Error())
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	video := model.Video{
		ID:           model.NewID(),
		UserID:       actor.ID,
		Title:        draft.Title,
		Description:  draft.Description,
		ThumbnailURL: draft.ThumbnailURL,
		VideoURL:     draft.VideoURL,
		Category:     draft.Category,
		IsPaid:       draft.IsPaid,
		IsPinned:     draft.IsPinned,
		CreatedAt:    model.Millis(s.clock()),
	}

	s.videos = append(s.videos, video)
	persist(s.videoCol, s.videos)
	s.notifySuccess("Video added",
		"\""+video.Title+"\" has been added to your videos.")
	logging.Info("video added",
		logging.KeyEntityID, video.ID, logging.KeyUser, actor.Username)
	return &video
}

// UpdateVideo merges the patch into the matching video. Rejected unless the
// actor owns the video or is an admin. No-op if the ID is not found.
func (s *Store) UpdateVideo(id string, patch model.VideoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].ID != id {
			continue
		}
		if !canMutateVideo(s.actor(), &s.videos[i]) {
			s.notifyRejected("Video not updated", "You can only edit your own videos.")
			return
		}
		patch.Apply(&s.videos[i])
		persist(s.videoCol, s.videos)
		s.notifySuccess("Video updated", "Your changes have been saved.")
		return
	}
}

// DeleteVideo removes the matching video. Rejected unless the actor owns
// the video or is an admin. No-op if absent.
func (s *Store) DeleteVideo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].ID != id {
			continue
		}
		if !canMutateVideo(s.actor(), &s.videos[i]) {
			s.notifyRejected("Video not deleted", "You can only delete your own videos.")
			return
		}
		s.videos = append(s.videos[:i], s.videos[i+1:]...)
		persist(s.videoCol, s.videos)
		s.notifySuccess("Video deleted", "The video has been removed.")
		return
	}
}

// ToggleVideoPin flips the pinned flag on a video. Same ownership gate as
// update and delete.
func (s *Store) ToggleVideoPin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].ID != id {
			continue
		}
		if !canMutateVideo(s.actor(), &s.videos[i]) {
			s.notifyRejected("Video not updated", "You can only pin your own videos.")
			return
		}
		s.videos[i].IsPinned = !s.videos[i].IsPinned
		persist(s.videoCol, s.videos)
		return
	}
}
