// Package auth provides the identity/session provider: invite-code gated
// registration and login, the persisted user list, the current-session
// record, and the achievement/leveling side effects.
//
// The security model mirrors the tracked application faithfully: invite
// codes and passwords are stored in plaintext and the admin flag lives on
// the client side. It is a demo mechanic, not a sound design.
package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/storage"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// ValidInviteCodes are the accepted registration/login invite codes.
var ValidInviteCodes = []string{"ishowcryptoairdrops", "Irfan@123#13"}

// Special-user credentials. Matching registrations are promoted to admin
// and video creator.
const (
	specialEmail    = "malickirfan00@gmail.com"
	specialUsername = "UmarCryptospace"
	specialLevel    = 10
)

// achievementsPerLevel is how many achievements raise the level by one.
const achievementsPerLevel = 3

// Service is the identity provider. The domain store consumes it read-only
// through CurrentUser and calls back through AwardAchievement.
type Service struct {
	mu       sync.Mutex
	users    *storage.Collection[model.User]
	session  *storage.Scalar[string]
	notifier notify.Notifier
	now      func() time.Time

	current *model.User
}

// Options configures the auth service.
type Options struct {
	KV       storage.KV
	Notifier notify.Notifier
	Now      func() time.Time
}

// NewService creates the auth service and restores any persisted session.
func NewService(opts Options) *Service {
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Service{
		users:    storage.NewCollection[model.User](opts.KV, model.KeyUsers),
		session:  storage.NewScalar[string](opts.KV, model.KeySession),
		notifier: opts.Notifier,
		now:      opts.Now,
	}
	s.restoreSession()
	return s
}

// restoreSession loads the persisted current-user reference, if any.
func (s *Service) restoreSession() {
	userID, err := s.session.Load()
	if err != nil {
		if !storage.IsErrKeyNotFound(err) {
			logging.Warn("session record unreadable", logging.KeyError, err)
			_ = s.session.Clear()
		}
		return
	}

	users, err := s.users.Load(nil)
	if err != nil {
		logging.Warn("user list unreadable", logging.KeyError, err)
		return
	}
	for i := range users {
		if users[i].ID == userID {
			u := users[i]
			s.current = &u
			return
		}
	}
	// Stale session pointing at a deleted user.
	_ = s.session.Clear()
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func (s *Service) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// CurrentActor returns the acting identity view, or nil when anonymous.
func (s *Service) CurrentActor() *model.Actor {
	u := s.CurrentUser()
	if u == nil {
		return nil
	}
	a := u.Actor()
	return &a
}

// inviteCodeValid reports whether the code is one of the accepted codes.
func inviteCodeValid(code string) bool {
	for _, valid := range ValidInviteCodes {
		if code == valid {
			return true
		}
	}
	return false
}

// isSpecialUser checks for the hardwired admin account.
func isSpecialUser(email, username string) bool {
	return email == specialEmail && username == specialUsername
}

// Register creates a new account and logs it in. The invite code gates
// registration; the special email/username pair is promoted to admin.
func (s *Service) Register(email, username, password, inviteCode string) (*model.User, error) {
	if !inviteCodeValid(inviteCode) {
		s.notifier.Notify(model.NewNotification(model.NotifyError,
			"Registration failed", "Invalid invite code. Please use a valid invite code."))
		return nil, errors.ErrInvalidInviteCode
	}
	if err := validate.NonEmpty("email", email); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("username", username); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("password", password); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users.Load(nil)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("load_users", "user list unreadable", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			s.notifier.Notify(model.NewNotification(model.NotifyError,
				"Registration failed", "This email is already associated with an account."))
			return nil, errors.ErrEmailTaken
		}
		if u.Username == username {
			s.notifier.Notify(model.NewNotification(model.NotifyError,
				"Registration failed", "Please choose a different username."))
			return nil, errors.ErrUsernameTaken
		}
	}

	special := isSpecialUser(email, username)
	user := model.User{
		ID:              model.NewID(),
		Email:           email,
		Username:        username,
		Password:        password,
		IsAdmin:         special,
		CanUploadVideos: special,
		Level:           1,
	}
	if special {
		user.Level = specialLevel
	}

	users = append(users, user)
	if err := s.users.Save(users); err != nil {
		return nil, errors.NewSystemErrorWithOp("save_users", "persistence write failed", err)
	}

	s.current = &user
	_ = s.session.Save(user.ID)

	title := "Registration successful"
	message := "Welcome to the platform, " + username + "!"
	if special {
		title = "Admin registration successful"
		message = "Welcome, Admin! You have full access to the platform."
	}
	s.notifier.Notify(model.NewNotification(model.NotifySuccess, title, message))
	logging.Info("user registered", logging.KeyUser, username, "admin", special)

	out := user
	return &out, nil
}

// Login authenticates an existing account.
func (s *Service) Login(email, password, inviteCode string) (*model.User, error) {
	if !inviteCodeValid(inviteCode) {
		s.notifier.Notify(model.NewNotification(model.NotifyError,
			"Invalid invite code", "Please enter the correct invite code to access the platform."))
		return nil, errors.ErrInvalidInviteCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users.Load(nil)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("load_users", "user list unreadable", err)
	}

	for i := range users {
		if !strings.EqualFold(users[i].Email, email) {
			continue
		}
		if users[i].Password != password {
			s.notifier.Notify(model.NewNotification(model.NotifyError,
				"Invalid credentials", "The password you entered is incorrect."))
			return nil, errors.ErrBadCredentials
		}

		u := users[i]
		s.current = &u
		_ = s.session.Save(u.ID)
		s.notifier.Notify(model.NewNotification(model.NotifySuccess,
			"Welcome back!", "You're now logged in as "+u.Username))
		logging.Info("user logged in", logging.KeyUser, u.Username)
		out := u
		return &out, nil
	}

	s.notifier.Notify(model.NewNotification(model.NotifyError,
		"User not found", "No account found with this email. Please register first."))
	return nil, errors.ErrBadCredentials
}

// Logout clears the current session.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	logging.Info("user logged out", logging.KeyUser, s.current.Username)
	s.current = nil
	_ = s.session.Clear()
	s.notifier.Notify(model.NewNotification(model.NotifySuccess,
		"Logged out", "You have been successfully logged out."))
}

// AwardAchievement appends an achievement to the current user and recomputes
// the level. Anonymous calls are dropped. Achievements are append-only.
func (s *Service) AwardAchievement(name, description, icon string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}

	achievement := model.Achievement{
		ID:          model.NewID(),
		Name:        name,
		Description: description,
		Icon:        icon,
		DateEarned:  model.Millis(s.now()),
	}
	s.current.Achievements = append(s.current.Achievements, achievement)
	s.current.Level = deriveLevel(s.current)

	users, err := s.users.Load(nil)
	if err == nil {
		for i := range users {
			if users[i].ID == s.current.ID {
				users[i] = *s.current
				break
			}
		}
		if err := s.users.Save(users); err != nil {
			logging.Error("achievement write failed", logging.KeyError, err)
		}
	}

	s.notifier.Notify(model.NewNotification(model.NotifySuccess,
		"Achievement unlocked", name+" - "+description))
	logging.Info("achievement awarded",
		logging.KeyUser, s.current.Username, "achievement", name, "level", s.current.Level)
}

// deriveLevel computes the synthetic level from the achievement count.
// The special user never drops below its promotion floor.
func deriveLevel(u *model.User) int {
	level := 1 + len(u.Achievements)/achievementsPerLevel
	if isSpecialUser(u.Email, u.Username) && level < specialLevel {
		level = specialLevel
	}
	return level
}
