package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "droptrack")
	assert.Contains(t, path, "db")
}

func TestGetSetDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Get("missing")
	assert.True(t, IsErrKeyNotFound(err))

	require.NoError(t, db.Set("k", []byte(`"v"`)))

	data, err := db.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"v"`), data)

	exists, err := db.Exists("k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete("k"))
	exists, err = db.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCollectionSeedsWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	col := NewCollection[model.Tool](db, model.KeyTools)

	seed := []model.Tool{
		{ID: "1", UserID: model.SeedUserID, Title: "DeBank", Category: "Wallet Connect", URL: "https://debank.com/"},
	}
	items, err := col.Load(seed)
	require.NoError(t, err)
	assert.Equal(t, seed, items)

	// Seed must have been written, and a second load with a different seed
	// must not overwrite the persisted list.
	items, err = col.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, seed, items)
}

func TestCollectionRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	col := NewCollection[model.Testnet](db, model.KeyTestnets)

	written := []model.Testnet{
		{
			ID:       "1",
			UserID:   "user-a",
			Title:    "Taiko Testnet",
			Category: "Galxe Testnet",
			Progress: 67,
			Tasks: []model.TestnetTask{
				{ID: "1", Name: "Bridge ETH", URL: "https://bridge.test.taiko.xyz", IsCompleted: true},
				{ID: "2", Name: "Swap tokens", IsCompleted: true},
				{ID: "3", Name: "Deploy a contract", IsCompleted: false},
			},
			IsPinned:  true,
			CreatedAt: 1700000000000,
		},
		{ID: "2", UserID: "user-b", Title: "Linea Voyage", Category: "Mining Sessions"},
	}
	require.NoError(t, col.Save(written))

	loaded, err := col.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, written, loaded, "round trip preserves fields and order")
}

func TestCollectionMalformedData(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Set(model.KeyAirdrops, []byte("{not json")))

	col := NewCollection[model.Airdrop](db, model.KeyAirdrops)
	_, err := col.Load(nil)
	assert.Error(t, err, "parse errors propagate for top-level fallback")
}

func TestCollectionSaveNil(t *testing.T) {
	db := setupTestDB(t)
	col := NewCollection[model.Video](db, model.KeyVideos)

	require.NoError(t, col.Save(nil))
	data, err := db.Get(model.KeyVideos)
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), data, "nil persists as an empty array")
}

func TestScalarRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	s := NewScalar[int64](db, model.KeyLastRefresh)

	_, err := s.Load()
	assert.True(t, IsErrKeyNotFound(err))

	require.NoError(t, s.Save(1700000000000))
	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), v)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.True(t, IsErrKeyNotFound(err))
}
