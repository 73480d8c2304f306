package runtime

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/output"
)

func newMemoryContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := New(Options{InMemory: true, Notifier: notify.Discard})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotEmpty(t, opts.DBPath)
	assert.False(t, opts.InMemory)
	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
}

func TestNewWiresEverything(t *testing.T) {
	ctx := newMemoryContext(t)

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Formatter)
	assert.NotNil(t, ctx.Config)
	assert.NotNil(t, ctx.Auth)
	assert.NotNil(t, ctx.Categories)
	assert.NotNil(t, ctx.Store)

	// The store is loaded and seeded through the wired KV.
	assert.Len(t, ctx.Store.Airdrops(), 2)
	assert.Nil(t, ctx.Auth.CurrentUser())
}

func TestNewWithOptions(t *testing.T) {
	ctx, err := New(Options{
		InMemory:  true,
		Format:    output.FormatJSON,
		ColorMode: output.ColorNever,
		Debug:     true,
		Notifier:  notify.Discard,
	})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorNever, ctx.Formatter.ColorMode)
	assert.True(t, ctx.Debug)
	assert.True(t, ctx.IsJSON())
}

func TestNewWithEnvVariable(t *testing.T) {
	t.Setenv("DROPTRACK_DATABASE", ":memory:")

	ctx, err := New(Options{Notifier: notify.Discard})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
}

func TestNewWithEnvVariablePath(t *testing.T) {
	t.Setenv("DROPTRACK_DATABASE", t.TempDir()+"/droptrack-test-db")

	ctx, err := New(Options{Notifier: notify.Discard})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
}

func TestContextClose(t *testing.T) {
	ctx, err := New(Options{InMemory: true, Notifier: notify.Discard})
	require.NoError(t, err)
	assert.NoError(t, ctx.Close())

	// Closing nil DB should be safe
	nilCtx := &Context{}
	assert.NoError(t, nilCtx.Close())
}

func TestContextFormatters(t *testing.T) {
	ctx := newMemoryContext(t)

	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())
}

func TestContextDebugf(t *testing.T) {
	t.Run("debug_enabled", func(t *testing.T) {
		var buf bytes.Buffer
		ctx, err := New(Options{InMemory: true, Debug: true, Notifier: notify.Discard})
		require.NoError(t, err)
		defer ctx.Close()

		ctx.Formatter.Writer = &buf
		ctx.Debugf("test message %s", "arg1")

		assert.Contains(t, buf.String(), "[DEBUG]")
		assert.Contains(t, buf.String(), "test message arg1")
	})

	t.Run("debug_disabled", func(t *testing.T) {
		var buf bytes.Buffer
		ctx, err := New(Options{InMemory: true, Debug: false, Notifier: notify.Discard})
		require.NoError(t, err)
		defer ctx.Close()

		ctx.Formatter.Writer = &buf
		ctx.Debugf("test message")

		assert.Empty(t, buf.String())
	})
}
