// Package store implements the domain state store: in-memory collections of
// airdrops, testnets, tools, videos and rankings, their CRUD operations,
// derived testnet progress, the randomized refresh simulation, and
// write-through persistence to the key-value store.
//
// All mutations are synchronous with respect to in-memory state; persistence
// writes are fire-and-forget. The store is constructed once at startup and
// passed by reference; it holds no ambient globals.
package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cryptopilot/droptrack/internal/config"
	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/storage"
)

// Identity is the narrow view of the auth service the store depends on.
type Identity interface {
	// CurrentActor returns the acting identity, or nil when anonymous.
	CurrentActor() *model.Actor
	// AwardAchievement appends an achievement to the current user.
	AwardAchievement(name, description, icon string)
}

// Store owns the five entity collections and their persistence.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	identity Identity
	notifier notify.Notifier
	clock    func() time.Time
	rng      *rand.Rand
	refresh  config.RefreshConfig

	airdrops []model.Airdrop
	testnets []model.Testnet
	tools    []model.Tool
	videos   []model.Video
	rankings []model.AirdropRanking

	airdropCol  *storage.Collection[model.Airdrop]
	testnetCol  *storage.Collection[model.Testnet]
	toolCol     *storage.Collection[model.Tool]
	videoCol    *storage.Collection[model.Video]
	rankingCol  *storage.Collection[model.AirdropRanking]
	lastRefresh *storage.Scalar[int64]

	// degraded is set when stored data was unreadable at load time and the
	// store fell back to seed data without persisting it.
	degraded bool
}

// Options configures the store.
type Options struct {
	KV       storage.KV
	Identity Identity
	Notifier notify.Notifier

	// Clock is the time source. Defaults to time.Now.
	Clock func() time.Time

	// Rand is the random source for the refresh simulation. Defaults to a
	// time-seeded source.
	Rand *rand.Rand

	// Refresh holds the simulation tunables. Zero values are replaced by
	// defaults.
	Refresh config.RefreshConfig
}

// New creates the store and loads every collection, seeding absent keys with
// demo data. If any stored collection is unreadable, the whole store falls
// back to seed data and a single degraded-mode warning is emitted.
func New(opts Options) (*Store, error) {
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock().UnixNano()))
	}
	if opts.Refresh.TickInterval == 0 {
		opts.Refresh = config.DefaultRuntimeConfig().Refresh
	}

	s := &Store{
		kv:          opts.KV,
		identity:    opts.Identity,
		notifier:    opts.Notifier,
		clock:       opts.Clock,
		rng:         opts.Rand,
		refresh:     opts.Refresh,
		airdropCol:  storage.NewCollection[model.Airdrop](opts.KV, model.KeyAirdrops),
		testnetCol:  storage.NewCollection[model.Testnet](opts.KV, model.KeyTestnets),
		toolCol:     storage.NewCollection[model.Tool](opts.KV, model.KeyTools),
		videoCol:    storage.NewCollection[model.Video](opts.KV, model.KeyVideos),
		rankingCol:  storage.NewCollection[model.AirdropRanking](opts.KV, model.KeyRankings),
		lastRefresh: storage.NewScalar[int64](opts.KV, model.KeyLastRefresh),
	}

	s.load()
	return s, nil
}

// load reads every collection once, writing seed data for absent keys. A
// parse failure on any key degrades the whole store to seed data.
func (s *Store) load() {
	now := s.clock()
	seeds := seedData(now)

	var loadErr error

	s.airdrops = loadCollection(s.airdropCol, seeds.airdrops, &loadErr)
	s.testnets = loadCollection(s.testnetCol, seeds.testnets, &loadErr)
	s.tools = loadCollection(s.toolCol, seeds.tools, &loadErr)
	s.videos = loadCollection(s.videoCol, seeds.videos, &loadErr)
	s.rankings = loadCollection(s.rankingCol, seeds.rankings, &loadErr)

	if loadErr != nil {
		// Degraded mode: serve seed data for every collection and leave the
		// stored values untouched for inspection.
		s.airdrops = seeds.airdrops
		s.testnets = seeds.testnets
		s.tools = seeds.tools
		s.videos = seeds.videos
		s.rankings = seeds.rankings
		s.degraded = true

		logging.Error("stored data unreadable, using seed data",
			logging.KeyError, loadErr)
		s.notifier.Notify(model.NewNotification(model.NotifyWarning,
			"Error loading data",
			"There was an error loading your data. Using default data instead."))
	}
}

// loadCollection loads one collection, recording the first parse error.
func loadCollection[T any](col *storage.Collection[T], seed []T, loadErr *error) []T {
	items, err := col.Load(seed)
	if err != nil {
		if *loadErr == nil {
			*loadErr = err
		}
		return nil
	}
	return items
}

// Degraded reports whether the store fell back to seed data at load time.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// persist writes one collection through to storage. Failures are logged and
// otherwise ignored: the in-memory state is authoritative for this session.
func persist[T any](col *storage.Collection[T], items []T) {
	if err := col.Save(items); err != nil {
		logging.Error("persistence write failed",
			logging.KeyStoreKey, col.Key(), logging.KeyError, err)
	}
}

// actor returns the current acting identity, or nil when anonymous.
func (s *Store) actor() *model.Actor {
	if s.identity == nil {
		return nil
	}
	return s.identity.CurrentActor()
}

// notifySuccess emits a success notification.
func (s *Store) notifySuccess(title, message string) {
	s.notifier.Notify(model.NewNotification(model.NotifySuccess, title, message))
}

// notifyRejected emits a rejection notification.
func (s *Store) notifyRejected(title, message string) {
	s.notifier.Notify(model.NewNotification(model.NotifyError, title, message))
}
