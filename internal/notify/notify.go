// Package notify carries user-visible notifications from the domain store to
// the presentation layer. The store never renders anything itself; it emits
// notifications into a sink chosen at wiring time.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	isatty "github.com/mattn/go-isatty"

	"github.com/cryptopilot/droptrack/internal/model"
)

// Notifier receives notifications emitted by the domain store.
type Notifier interface {
	Notify(n *model.Notification)
}

// Func adapts a plain function to the Notifier interface.
type Func func(n *model.Notification)

// Notify implements Notifier.
func (f Func) Notify(n *model.Notification) {
	f(n)
}

// Discard drops all notifications.
var Discard = Func(func(*model.Notification) {})

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// CLISink renders notifications to a terminal, with color when the writer
// is a TTY.
type CLISink struct {
	out   io.Writer
	color bool
}

// NewCLISink creates a sink writing to stderr.
func NewCLISink() *CLISink {
	return &CLISink{
		out:   os.Stderr,
		color: isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// NewCLISinkTo creates a sink writing to an arbitrary writer without color.
func NewCLISinkTo(out io.Writer) *CLISink {
	return &CLISink{out: out}
}

// Notify implements Notifier.
func (s *CLISink) Notify(n *model.Notification) {
	label := string(n.Level)
	if s.color {
		switch n.Level {
		case model.NotifySuccess:
			label = successStyle.Render(label)
		case model.NotifyWarning:
			label = warnStyle.Render(label)
		case model.NotifyError:
			label = errorStyle.Render(label)
		default:
			label = infoStyle.Render(label)
		}
	}
	fmt.Fprintf(s.out, "[%s] %s: %s\n", label, n.Title, n.Message)
}

// MemorySink records notifications for inspection in tests.
type MemorySink struct {
	mu            sync.Mutex
	notifications []*model.Notification
}

// NewMemorySink creates an empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Notify implements Notifier.
func (s *MemorySink) Notify(n *model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
}

// All returns a copy of the recorded notifications.
func (s *MemorySink) All() []*model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Last returns the most recent notification, or nil.
func (s *MemorySink) Last() *model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.notifications) == 0 {
		return nil
	}
	return s.notifications[len(s.notifications)-1]
}

// Reset clears recorded notifications.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}
