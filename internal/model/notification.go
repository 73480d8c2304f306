package model

import "time"

// NotificationLevel is the severity of a user-visible notification.
type NotificationLevel string

// Notification levels.
const (
	NotifySuccess NotificationLevel = "success"
	NotifyInfo    NotificationLevel = "info"
	NotifyWarning NotificationLevel = "warning"
	NotifyError   NotificationLevel = "error"
)

// Notification is a user-visible message emitted by the domain store:
// mutation confirmations, validation rejections, degraded-mode warnings.
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewNotification creates a notification stamped with the current time.
func NewNotification(level NotificationLevel, title, message string) *Notification {
	return &Notification{
		Level:     level,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Icon returns an emoji name for the notification level.
func (n *Notification) Icon() string {
	switch n.Level {
	case NotifySuccess:
		return "white_check_mark"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "x"
	default:
		return "information_source"
	}
}
