package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/storage"
)

// stubIdentity is a fixed identity provider for tests.
type stubIdentity struct {
	actor  *model.Actor
	awards []string
}

func (s *stubIdentity) CurrentActor() *model.Actor { return s.actor }

func (s *stubIdentity) AwardAchievement(name, description, icon string) {
	s.awards = append(s.awards, name)
}

func newTestKV(t *testing.T) storage.KV {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testClock is a settable time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T, kv storage.KV, identity Identity) (*Store, *notify.MemorySink, *testClock) {
	t.Helper()
	sink := notify.NewMemorySink()
	clock := &testClock{now: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)}
	s, err := New(Options{
		KV:       kv,
		Identity: identity,
		Notifier: sink,
		Clock:    clock.Now,
	})
	require.NoError(t, err)
	return s, sink, clock
}

func authedUser() *stubIdentity {
	return &stubIdentity{actor: &model.Actor{ID: "u1", Username: "alice"}}
}

func validAirdropDraft() model.AirdropDraft {
	return model.AirdropDraft{
		Title:    "zkSync Mainnet",
		Category: "Layer 1 & Testnet Mainnet",
	}
}

func TestNewSeedsCollectionsOnFirstRun(t *testing.T) {
	kv := newTestKV(t)
	s, sink, _ := newTestStore(t, kv, authedUser())

	assert.Len(t, s.Airdrops(), 2)
	assert.Len(t, s.Testnets(), 2)
	assert.Len(t, s.Tools(), 2)
	assert.Len(t, s.Videos(), 2)
	assert.Empty(t, s.Rankings())
	assert.False(t, s.Degraded())
	assert.Empty(t, sink.All())

	// The seed write is durable, not just in-memory.
	ok, err := kv.Exists(model.KeyAirdrops)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDegradedModeOnUnreadableData(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Set(model.KeyTestnets, []byte("{not json")))

	s, sink, _ := newTestStore(t, kv, authedUser())

	assert.True(t, s.Degraded())
	assert.Len(t, s.Airdrops(), 2)
	assert.Len(t, s.Testnets(), 2)

	// Exactly one warning, regardless of how many keys were affected.
	all := sink.All()
	require.Len(t, all, 1)
	assert.Equal(t, model.NotifyWarning, all[0].Level)
	assert.Equal(t, "Error loading data", all[0].Title)
}

func TestAddAirdropAssignsOwnership(t *testing.T) {
	s, sink, _ := newTestStore(t, newTestKV(t), authedUser())

	a := s.AddAirdrop(validAirdropDraft())
	require.NotNil(t, a)
	assert.Equal(t, "u1", a.UserID)
	assert.NotEmpty(t, a.ID)
	assert.NotZero(t, a.CreatedAt)
	assert.Equal(t, model.NotifySuccess, sink.Last().Level)
}

func TestAddAirdropAnonymousIsNoOp(t *testing.T) {
	s, sink, _ := newTestStore(t, newTestKV(t), &stubIdentity{})

	before := len(s.Airdrops())
	assert.Nil(t, s.AddAirdrop(validAirdropDraft()))
	assert.Len(t, s.Airdrops(), before)
	assert.Empty(t, sink.All())
}

func TestAddAirdropRejectsInvalidDraft(t *testing.T) {
	s, sink, _ := newTestStore(t, newTestKV(t), authedUser())

	assert.Nil(t, s.AddAirdrop(model.AirdropDraft{Category: "DeFi"}))
	require.NotNil(t, sink.Last())
	assert.Equal(t, model.NotifyError, sink.Last().Level)
}

func TestUpdateAirdropShallowMerge(t *testing.T) {
	s, _, _ := newTestStore(t, newTestKV(t), authedUser())

	a := s.AddAirdrop(validAirdropDraft())
	require.NotNil(t, a)

	title := "Renamed"
	s.UpdateAirdrop(a.ID, model.AirdropPatch{Title: &title})

	got, ok := s.Airdrop(a.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, a.Category, got.Category)
}

func TestDeleteAirdropIsIdempotent(t *testing.T) {
	s, _, _ := newTestStore(t, newTestKV(t), authedUser())

	a := s.AddAirdrop(validAirdropDraft())
	require.NotNil(t, a)
	before := len(s.Airdrops())

	s.DeleteAirdrop(a.ID)
	assert.Len(t, s.Airdrops(), before-1)

	// Deleting again, and deleting garbage, changes nothing.
	s.DeleteAirdrop(a.ID)
	s.DeleteAirdrop("no-such-id")
	assert.Len(t, s.Airdrops(), before-1)
}

func TestAirdropLinkCap(t *testing.T) {
	s, sink, _ := newTestStore(t, newTestKV(t), authedUser())

	draft := validAirdropDraft()
	for i := 0; i < model.MaxAirdropLinks; i++ {
		draft.Links = append(draft.Links, model.AirdropLink{
			ID: model.NewID(), Name: "link", URL: "https://example.com",
		})
	}
	a := s.AddAirdrop(draft)
	require.NotNil(t, a)

	sink.Reset()
	s.AddAirdropLink(a.ID, "one too many", "https://example.com")

	got, ok := s.Airdrop(a.ID)
	require.True(t, ok)
	assert.Len(t, got.Links, model.MaxAirdropLinks)
	require.NotNil(t, sink.Last())
	assert.Equal(t, model.NotifyError, sink.Last().Level)
}

func TestTestnetTaskCap(t *testing.T) {
	s, sink, _ := newTestStore(t, newTestKV(t), authedUser())

	draft := model.TestnetDraft{Title: "Busy Testnet", Category: "Galxe Testnet"}
	for i := 0; i < model.MaxTestnetTasks; i++ {
		draft.Tasks = append(draft.Tasks, model.TestnetTask{
			ID: model.NewID(), Name: "task",
		})
	}
	tn := s.AddTestnet(draft)
	require.NotNil(t, tn)

	sink.Reset()
	s.AddTestnetTask(tn.ID, "one too many", "")

	got, ok := s.Testnet(tn.ID)
	require.True(t, ok)
	assert.Len(t, got.Tasks, model.MaxTestnetTasks)
	require.NotNil(t, sink.Last())
	assert.Equal(t, model.NotifyError, sink.Last().Level)
}

func TestUpdateTestnetTaskRecomputesProgress(t *testing.T) {
	s, _, _ := newTestStore(t, newTestKV(t), authedUser())

	tn := s.AddTestnet(model.TestnetDraft{
		Title:    "Two Tasks",
		Category: "Galxe Testnet",
		Tasks: []model.TestnetTask{
			{ID: "t1", Name: "first"},
			{ID: "t2", Name: "second"},
		},
	})
	require.NotNil(t, tn)
	assert.Equal(t, 0, tn.Progress)

	s.UpdateTestnetTask(tn.ID, "t1", true)
	got, _ := s.Testnet(tn.ID)
	assert.Equal(t, 50, got.Progress)
	assert.False(t, got.IsCompleted)

	s.UpdateTestnetTask(tn.ID, "t2", true)
	got, _ = s.Testnet(tn.ID)
	assert.Equal(t, 100, got.Progress)
	assert.True(t, got.IsCompleted)

	s.UpdateTestnetTask(tn.ID, "t2", false)
	got, _ = s.Testnet(tn.ID)
	assert.Equal(t, 50, got.Progress)
	assert.False(t, got.IsCompleted)
}

func TestVideoOwnershipGate(t *testing.T) {
	kv := newTestKV(t)
	creator := &stubIdentity{actor: &model.Actor{ID: "u1", Username: "alice", CanUploadVideos: true}}
	s, sink, _ := newTestStore(t, kv, creator)

	v := s.AddVideo(model.VideoDraft{
		Title:    "Bridging 101",
		VideoURL: "https://www.youtube.com/watch?v=abc",
		Category: "Crypto Series",
	})
	require.NotNil(t, v)

	// A different non-admin user cannot touch it.
	creator.actor = &model.Actor{ID: "u2", Username: "bob", CanUploadVideos: true}
	sink.Reset()

	title := "Hijacked"
	s.UpdateVideo(v.ID, model.VideoPatch{Title: &title})
	s.DeleteVideo(v.ID)
	s.ToggleVideoPin(v.ID)

	got, ok := s.Video(v.ID)
	require.True(t, ok)
	assert.Equal(t, "Bridging 101", got.Title)
	assert.False(t, got.IsPinned)
	assert.Len(t, sink.All(), 3)
	for _, n := range sink.All() {
		assert.Equal(t, model.NotifyError, n.Level)
	}

	// An admin can.
	creator.actor = &model.Actor{ID: "u3", Username: "root", IsAdmin: true}
	s.UpdateVideo(v.ID, model.VideoPatch{Title: &title})
	got, _ = s.Video(v.ID)
	assert.Equal(t, "Hijacked", got.Title)

	// So can the owner.
	creator.actor = &model.Actor{ID: "u1", Username: "alice"}
	s.DeleteVideo(v.ID)
	_, ok = s.Video(v.ID)
	assert.False(t, ok)
}

func TestAddVideoRequiresCreatorRole(t *testing.T) {
	id := &stubIdentity{actor: &model.Actor{ID: "u1", Username: "alice"}}
	s, sink, _ := newTestStore(t, newTestKV(t), id)

	draft := model.VideoDraft{
		Title:    "Not Allowed",
		VideoURL: "https://www.youtube.com/watch?v=abc",
		Category: "Crypto Series",
	}
	assert.Nil(t, s.AddVideo(draft))
	require.NotNil(t, sink.Last())
	assert.Equal(t, model.NotifyError, sink.Last().Level)

	// Admin passes the gate without the creator flag.
	id.actor.IsAdmin = true
	assert.NotNil(t, s.AddVideo(draft))
}

func TestRankingsAdminOnly(t *testing.T) {
	id := authedUser()
	s, sink, _ := newTestStore(t, newTestKV(t), id)

	draft := model.RankingDraft{Rank: 1, Title: "Arbitrum", Rating: 4.5}
	assert.Nil(t, s.AddRanking(draft))
	assert.Empty(t, s.Rankings())
	require.NotNil(t, sink.Last())
	assert.Equal(t, model.NotifyError, sink.Last().Level)

	id.actor.IsAdmin = true
	r := s.AddRanking(draft)
	require.NotNil(t, r)
	assert.Len(t, s.Rankings(), 1)

	id.actor.IsAdmin = false
	s.DeleteRanking(r.ID)
	assert.Len(t, s.Rankings(), 1)
}

func TestRankingRejectsBadRating(t *testing.T) {
	id := &stubIdentity{actor: &model.Actor{ID: "a", Username: "root", IsAdmin: true}}
	s, _, _ := newTestStore(t, newTestKV(t), id)

	assert.Nil(t, s.AddRanking(model.RankingDraft{Rank: 1, Title: "x", Rating: 4.3}))
	assert.NotNil(t, s.AddRanking(model.RankingDraft{Rank: 1, Title: "x", Rating: 4.5}))
}

func TestRankingsSortedPinnedThenRank(t *testing.T) {
	id := &stubIdentity{actor: &model.Actor{ID: "a", Username: "root", IsAdmin: true}}
	s, _, _ := newTestStore(t, newTestKV(t), id)

	s.AddRanking(model.RankingDraft{Rank: 3, Title: "third", Rating: 3})
	s.AddRanking(model.RankingDraft{Rank: 1, Title: "first", Rating: 5})
	pinned := s.AddRanking(model.RankingDraft{Rank: 5, Title: "pinned", Rating: 4, IsPinned: true})
	require.NotNil(t, pinned)

	got := s.Rankings()
	require.Len(t, got, 3)
	assert.Equal(t, "pinned", got[0].Title)
	assert.Equal(t, "first", got[1].Title)
	assert.Equal(t, "third", got[2].Title)
}

func TestRoundTripReload(t *testing.T) {
	kv := newTestKV(t)
	id := authedUser()
	s1, _, _ := newTestStore(t, kv, id)

	draft := validAirdropDraft()
	draft.Links = []model.AirdropLink{{ID: "l1", Name: "site", URL: "https://example.com"}}
	require.NotNil(t, s1.AddAirdrop(draft))
	require.NotNil(t, s1.AddTestnet(model.TestnetDraft{
		Title:    "Round Trip",
		Category: "Galxe Testnet",
		Tasks:    []model.TestnetTask{{ID: "t1", Name: "only", IsCompleted: true}},
	}))

	s2, _, _ := newTestStore(t, kv, id)
	assert.Equal(t, s1.Airdrops(), s2.Airdrops())
	assert.Equal(t, s1.Testnets(), s2.Testnets())
	assert.Equal(t, s1.Tools(), s2.Tools())
	assert.Equal(t, s1.Videos(), s2.Videos())
	assert.False(t, s2.Degraded())
}

func TestSnapshotsSortPinnedFirstThenNewest(t *testing.T) {
	s, _, clock := newTestStore(t, newTestKV(t), authedUser())

	clock.Advance(time.Hour)
	old := s.AddAirdrop(validAirdropDraft())
	clock.Advance(time.Hour)
	newer := s.AddAirdrop(validAirdropDraft())
	clock.Advance(time.Hour)
	pinnedDraft := validAirdropDraft()
	pinnedDraft.IsPinned = true
	pinned := s.AddAirdrop(pinnedDraft)

	got := s.Airdrops()
	require.Len(t, got, 5)
	// Seed data includes one pinned airdrop created before ours.
	assert.Equal(t, pinned.ID, got[0].ID)
	assert.Equal(t, newer.ID, got[2].ID)
	assert.Equal(t, old.ID, got[3].ID)
}

func TestStatsCountsOwnAndSeedRecords(t *testing.T) {
	s, _, _ := newTestStore(t, newTestKV(t), authedUser())

	draft := validAirdropDraft()
	draft.IsCompleted = true
	require.NotNil(t, s.AddAirdrop(draft))

	st := s.Stats()
	// 2 seed airdrops + 1 own, 2 seed testnets, none completed but ours.
	assert.Equal(t, 3, st.TotalAirdrops)
	assert.Equal(t, 1, st.CompletedAirdrops)
	assert.Equal(t, 2, st.TotalTestnets)
	assert.Equal(t, 2, st.ActiveTestnets)
	// 1 completed of 5 items, rounded.
	assert.Equal(t, 20, st.OverallProgress)
}
