package output

import (
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/store"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	return j.JSON(ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	})
}

// ListResponse wraps an entity list. The entity structs carry their own JSON
// tags, matching the stored representation exactly.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// PrintList outputs any entity list in JSON format.
func PrintList[T any](j *JSONFormatter, items []T) error {
	return j.JSON(ListResponse[T]{Items: items, Count: len(items)})
}

// StatsResponse represents the dashboard aggregates in JSON.
type StatsResponse struct {
	TotalAirdrops     int `json:"total_airdrops"`
	CompletedAirdrops int `json:"completed_airdrops"`
	TotalTestnets     int `json:"total_testnets"`
	ActiveTestnets    int `json:"active_testnets"`
	DailyTasks        int `json:"daily_tasks"`
	TotalTools        int `json:"total_tools"`
	TotalVideos       int `json:"total_videos"`
	OverallProgress   int `json:"overall_progress"`
}

// PrintStats outputs dashboard aggregates in JSON format.
func (j *JSONFormatter) PrintStats(st store.Stats) error {
	return j.JSON(StatsResponse{
		TotalAirdrops:     st.TotalAirdrops,
		CompletedAirdrops: st.CompletedAirdrops,
		TotalTestnets:     st.TotalTestnets,
		ActiveTestnets:    st.ActiveTestnets,
		DailyTasks:        st.DailyTasks,
		TotalTools:        st.TotalTools,
		TotalVideos:       st.TotalVideos,
		OverallProgress:   st.OverallProgress,
	})
}

// RefreshResponse represents a refresh pass in JSON.
type RefreshResponse struct {
	Status            string `json:"status"`
	AirdropsCompleted int    `json:"airdrops_completed"`
	TestnetsAdvanced  int    `json:"testnets_advanced"`
}

// PrintRefresh outputs a refresh result in JSON format.
func (j *JSONFormatter) PrintRefresh(res store.RefreshResult) error {
	status := "skipped"
	if res.Ran {
		status = "refreshed"
	}
	return j.JSON(RefreshResponse{
		Status:            status,
		AirdropsCompleted: res.AirdropsCompleted,
		TestnetsAdvanced:  res.TestnetsAdvanced,
	})
}

// UserResponse represents the current session in JSON.
type UserResponse struct {
	Status          string              `json:"status"`
	ID              string              `json:"id,omitempty"`
	Email           string              `json:"email,omitempty"`
	Username        string              `json:"username,omitempty"`
	IsAdmin         bool                `json:"is_admin,omitempty"`
	CanUploadVideos bool                `json:"can_upload_videos,omitempty"`
	Level           int                 `json:"level,omitempty"`
	Achievements    []model.Achievement `json:"achievements,omitempty"`
}

// PrintUser outputs the current user in JSON format.
func (j *JSONFormatter) PrintUser(u *model.User) error {
	if u == nil {
		return j.JSON(UserResponse{Status: "anonymous"})
	}
	return j.JSON(UserResponse{
		Status:          "authenticated",
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		IsAdmin:         u.IsAdmin,
		CanUploadVideos: u.CanUploadVideos,
		Level:           u.Level,
		Achievements:    u.Achievements,
	})
}
