// Package category maintains the per-entity-type lists of allowed category
// labels. Labels can be listed and appended (admin only); there is no rename,
// delete or reorder.
package category

import (
	"sync"

	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/logging"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/storage"
	"github.com/cryptopilot/droptrack/internal/validate"
)

// EntityType identifies which category list an operation targets.
type EntityType string

// Entity types with their own category lists.
const (
	TypeAirdrop EntityType = "airdrop"
	TypeTestnet EntityType = "testnet"
	TypeTool    EntityType = "tool"
	TypeVideo   EntityType = "video"
)

// Default category lists, written on first run.
var (
	DefaultAirdropCategories = []string{
		"Layer 1 & Testnet Mainnet",
		"Telegram Bot Airdrops",
		"Daily Check-in Airdrops",
		"Twitter Airdrops",
		"Social Airdrops",
		"AI Airdrops",
		"Wallet Airdrops",
		"Exchange Airdrops",
	}
	DefaultTestnetCategories = []string{
		"Galxe Testnet",
		"Bridge Mining",
		"Mining Sessions",
	}
	DefaultToolCategories = []string{
		"Wallet Connect",
		"Airdrop Claim Checker",
		"Gas Fee Calculator",
		"Testnet Token Faucets",
		"Crypto Wallet Extensions",
		"Swaps & Bridges",
	}
	DefaultVideoCategories = []string{
		"Crypto Series",
		"Top Testnets",
		"Mining Projects",
	}
)

// storageKey maps an entity type to its persistence key.
func storageKey(entityType EntityType) string {
	switch entityType {
	case TypeAirdrop:
		return model.KeyAirdropCategories
	case TypeTestnet:
		return model.KeyTestnetCategories
	case TypeTool:
		return model.KeyToolCategories
	case TypeVideo:
		return model.KeyVideoCategories
	}
	return ""
}

// defaults maps an entity type to its built-in list.
func defaults(entityType EntityType) []string {
	switch entityType {
	case TypeAirdrop:
		return DefaultAirdropCategories
	case TypeTestnet:
		return DefaultTestnetCategories
	case TypeTool:
		return DefaultToolCategories
	case TypeVideo:
		return DefaultVideoCategories
	}
	return nil
}

// Registry holds the four independent category lists, persisted under one
// key per entity type.
type Registry struct {
	mu    sync.Mutex
	kv    storage.KV
	lists map[EntityType][]string
}

// NewRegistry creates a registry backed by the given store. Each list is
// loaded lazily on first access.
func NewRegistry(kv storage.KV) *Registry {
	return &Registry{
		kv:    kv,
		lists: make(map[EntityType][]string),
	}
}

// Load returns the persisted list for the entity type, writing and returning
// the built-in defaults if no list was ever stored. An existing persisted
// list, even one emptied or extended by an admin, is never overwritten.
func (r *Registry) Load(entityType EntityType) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(entityType)
}

func (r *Registry) loadLocked(entityType EntityType) []string {
	if list, ok := r.lists[entityType]; ok {
		return list
	}

	key := storageKey(entityType)
	if key == "" {
		return nil
	}

	col := storage.NewCollection[string](r.kv, key)
	list, err := col.Load(defaults(entityType))
	if err != nil {
		// Malformed stored list: serve defaults without persisting so the
		// stored value stays available for inspection.
		logging.Warn("category list unreadable, using defaults",
			logging.KeyStoreKey, key, logging.KeyError, err)
		list = defaults(entityType)
	}
	r.lists[entityType] = list
	return list
}

// Add appends a new category label. Returns false without mutation if the
// actor lacks admin privilege, the name is blank, or the name already exists
// (case-sensitive exact match).
func (r *Registry) Add(entityType EntityType, name string, actor *model.Actor) bool {
	if actor == nil || !actor.IsAdmin {
		return false
	}
	if err := validate.CategoryName(name); err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.loadLocked(entityType)
	for _, existing := range list {
		if existing == name {
			return false
		}
	}

	updated := append(append([]string(nil), list...), name)
	col := storage.NewCollection[string](r.kv, storageKey(entityType))
	if err := col.Save(updated); err != nil {
		// Write failures are fire-and-forget for collections, but a failed
		// category append is reported to the caller via false.
		logging.Error("category list write failed",
			logging.KeyStoreKey, col.Key(), logging.KeyError, err)
		return false
	}

	r.lists[entityType] = updated
	logging.Info("category added",
		logging.KeyEntity, string(entityType), "category", name)
	return true
}

// Contains reports whether the label is currently in the registry for the
// entity type. Entities saved earlier keep their category strings even if
// the registry changes; this check applies at input time only.
func (r *Registry) Contains(entityType EntityType, name string) bool {
	for _, existing := range r.Load(entityType) {
		if existing == name {
			return true
		}
	}
	return false
}

// Validate ensures a category label is usable for the entity type at input
// time.
func (r *Registry) Validate(entityType EntityType, name string) error {
	if err := validate.CategoryName(name); err != nil {
		return err
	}
	if !r.Contains(entityType, name) {
		return errors.NewUserErrorWithField("category", name,
			"Unknown category",
			"Pick one of the registered categories or ask an admin to add it")
	}
	return nil
}
