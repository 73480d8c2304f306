// Package runtime provides the application runtime context for Droptrack:
// it opens the key-value store and wires the identity provider, category
// registry and domain store together.
package runtime

import (
	"github.com/cryptopilot/droptrack/internal/auth"
	"github.com/cryptopilot/droptrack/internal/category"
	"github.com/cryptopilot/droptrack/internal/config"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/output"
	"github.com/cryptopilot/droptrack/internal/storage"
	"github.com/cryptopilot/droptrack/internal/store"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Notifier  notify.Notifier

	Config     *config.RuntimeConfig
	Auth       *auth.Service
	Categories *category.Registry
	Store      *store.Store

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Notifier overrides the default CLI sink (tests).
	Notifier notify.Notifier
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	cfg := config.Load()

	// Environment overrides beat caller-supplied defaults; explicit
	// in-memory mode beats everything.
	if cfg.Storage.InMemory {
		opts.InMemory = true
	}
	if cfg.Storage.Path != "" {
		opts.DBPath = cfg.Storage.Path
	}
	if opts.DBPath == "" {
		opts.DBPath = storage.DefaultPath()
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewCLISink()
	}

	authService := auth.NewService(auth.Options{
		KV:       db,
		Notifier: notifier,
	})
	registry := category.NewRegistry(db)

	domainStore, err := store.New(store.Options{
		KV:       db,
		Identity: authService,
		Notifier: notifier,
		Refresh:  cfg.Refresh,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	return &Context{
		DB:         db,
		Formatter:  formatter,
		Notifier:   notifier,
		Config:     cfg,
		Auth:       authService,
		Categories: registry,
		Store:      domainStore,
		Debug:      opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
