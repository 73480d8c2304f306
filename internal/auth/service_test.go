package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/storage"
)

const inviteCode = "ishowcryptoairdrops"

func setupService(t *testing.T) (*Service, *storage.DB, *notify.MemorySink) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sink := notify.NewMemorySink()
	svc := NewService(Options{KV: db, Notifier: sink})
	return svc, db, sink
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, sink := setupService(t)

	user, err := svc.Register("alice@example.com", "alice", "hunter2", inviteCode)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.CanUploadVideos)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, model.NotifySuccess, sink.Last().Level)

	// Registration logs the user in.
	current := svc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)

	svc.Logout()
	assert.Nil(t, svc.CurrentUser())

	_, err = svc.Login("alice@example.com", "hunter2", inviteCode)
	require.NoError(t, err)
	assert.Equal(t, "alice", svc.CurrentUser().Username)
}

func TestRegisterRejectsInvalidInviteCode(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register("bob@example.com", "bob", "pw", "wrong-code")
	assert.ErrorIs(t, err, errors.ErrInvalidInviteCode)
	assert.Nil(t, svc.CurrentUser())
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register("alice@example.com", "alice", "pw", inviteCode)
	require.NoError(t, err)

	_, err = svc.Register("ALICE@example.com", "alice2", "pw", inviteCode)
	assert.ErrorIs(t, err, errors.ErrEmailTaken)

	_, err = svc.Register("other@example.com", "alice", "pw", inviteCode)
	assert.ErrorIs(t, err, errors.ErrUsernameTaken)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register("alice@example.com", "alice", "hunter2", inviteCode)
	require.NoError(t, err)
	svc.Logout()

	_, err = svc.Login("alice@example.com", "wrong", inviteCode)
	assert.ErrorIs(t, err, errors.ErrBadCredentials)
	assert.Nil(t, svc.CurrentUser())

	_, err = svc.Login("nobody@example.com", "pw", inviteCode)
	assert.ErrorIs(t, err, errors.ErrBadCredentials)
}

func TestSpecialUserPromotion(t *testing.T) {
	svc, _, _ := setupService(t)

	user, err := svc.Register("malickirfan00@gmail.com", "UmarCryptospace", "pw", "Irfan@123#13")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.True(t, user.CanUploadVideos)
	assert.Equal(t, 10, user.Level)
}

func TestSessionPersistsAcrossServices(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewService(Options{KV: db})
	_, err = svc.Register("alice@example.com", "alice", "pw", inviteCode)
	require.NoError(t, err)

	// A new service over the same store restores the session.
	svc2 := NewService(Options{KV: db})
	current := svc2.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)
}

func TestAwardAchievement(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.UnixMilli(1700000000000)
	svc := NewService(Options{KV: db, Now: func() time.Time { return now }})

	// Anonymous award is a no-op.
	svc.AwardAchievement("Airdrop Completed", "Completed an airdrop", "rocket")

	_, err = svc.Register("alice@example.com", "alice", "pw", inviteCode)
	require.NoError(t, err)

	svc.AwardAchievement("Airdrop Completed", "Completed an airdrop", "rocket")

	user := svc.CurrentUser()
	require.Len(t, user.Achievements, 1)
	assert.Equal(t, "Airdrop Completed", user.Achievements[0].Name)
	assert.Equal(t, int64(1700000000000), user.Achievements[0].DateEarned)

	// Level rises with every third achievement.
	svc.AwardAchievement("Testnet Mastery", "Completed a testnet", "flask")
	svc.AwardAchievement("Collector", "Ten airdrops tracked", "star")
	assert.Equal(t, 2, svc.CurrentUser().Level)

	// Achievements survive a reload.
	svc2 := NewService(Options{KV: db})
	assert.Len(t, svc2.CurrentUser().Achievements, 3)
}

func TestCurrentActor(t *testing.T) {
	svc, _, _ := setupService(t)

	assert.Nil(t, svc.CurrentActor())

	_, err := svc.Register("alice@example.com", "alice", "pw", inviteCode)
	require.NoError(t, err)

	actor := svc.CurrentActor()
	require.NotNil(t, actor)
	assert.Equal(t, "alice", actor.Username)
	assert.False(t, actor.IsAdmin)
}
