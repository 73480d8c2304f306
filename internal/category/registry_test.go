package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/storage"
)

func setupRegistry(t *testing.T) (*Registry, *storage.DB) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRegistry(db), db
}

var (
	admin    = &model.Actor{ID: "admin-1", Username: "admin", IsAdmin: true}
	nonAdmin = &model.Actor{ID: "user-1", Username: "user"}
)

func TestLoadSeedsDefaults(t *testing.T) {
	r, db := setupRegistry(t)

	list := r.Load(TypeAirdrop)
	assert.Equal(t, DefaultAirdropCategories, list)

	// Defaults were persisted on first load.
	exists, err := db.Exists(model.KeyAirdropCategories)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadDoesNotOverwritePersisted(t *testing.T) {
	r, db := setupRegistry(t)

	require.True(t, r.Add(TypeTestnet, "Node Running", admin))

	// A fresh registry over the same store sees the admin-modified list,
	// not a re-seeded default one.
	r2 := NewRegistry(db)
	list := r2.Load(TypeTestnet)
	assert.Contains(t, list, "Node Running")
	assert.Equal(t, len(DefaultTestnetCategories)+1, len(list))
}

func TestAddRejectsNonAdmin(t *testing.T) {
	r, _ := setupRegistry(t)

	before := len(r.Load(TypeAirdrop))
	assert.False(t, r.Add(TypeAirdrop, "New Category", nonAdmin))
	assert.False(t, r.Add(TypeAirdrop, "New Category", nil))
	assert.Len(t, r.Load(TypeAirdrop), before)

	// The same call by an admin succeeds.
	assert.True(t, r.Add(TypeAirdrop, "New Category", admin))
	assert.Len(t, r.Load(TypeAirdrop), before+1)
}

func TestAddRejectsDuplicate(t *testing.T) {
	r, _ := setupRegistry(t)

	before := len(r.Load(TypeAirdrop))
	assert.False(t, r.Add(TypeAirdrop, "Social Airdrops", admin))
	assert.Len(t, r.Load(TypeAirdrop), before)

	// Case-sensitive exact match: different casing is a different label.
	assert.True(t, r.Add(TypeAirdrop, "social airdrops", admin))
}

func TestAddRejectsBlank(t *testing.T) {
	r, _ := setupRegistry(t)

	assert.False(t, r.Add(TypeTool, "", admin))
	assert.False(t, r.Add(TypeTool, "   ", admin))
}

func TestContainsAndValidate(t *testing.T) {
	r, _ := setupRegistry(t)

	assert.True(t, r.Contains(TypeVideo, "Crypto Series"))
	assert.False(t, r.Contains(TypeVideo, "Unknown"))

	assert.NoError(t, r.Validate(TypeVideo, "Crypto Series"))
	assert.Error(t, r.Validate(TypeVideo, "Unknown"))
	assert.Error(t, r.Validate(TypeVideo, ""))
}

func TestListsAreIndependent(t *testing.T) {
	r, _ := setupRegistry(t)

	require.True(t, r.Add(TypeTool, "Portfolio Trackers", admin))
	assert.False(t, r.Contains(TypeAirdrop, "Portfolio Trackers"))
	assert.False(t, r.Contains(TypeVideo, "Portfolio Trackers"))
}
