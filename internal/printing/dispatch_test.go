package printing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	name  string
	err   error
	calls int
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) Print(ctx context.Context, path string) error {
	b.calls++
	return b.err
}

func existingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wempy_order_1.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))
	return path
}

func TestDispatcher_MissingFile(t *testing.T) {
	primary := &stubBackend{name: "primary"}
	d := NewDispatcher(primary, nil, nil)

	err := d.Dispatch(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, 0, primary.calls)
}

func TestDispatcher_PrimarySuccess(t *testing.T) {
	primary := &stubBackend{name: "primary"}
	fallback := &stubBackend{name: "fallback"}
	d := NewDispatcher(primary, fallback, nil)

	assert.NoError(t, d.Dispatch(context.Background(), existingFile(t)))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls)
}

func TestDispatcher_FallbackAfterPrimaryFailure(t *testing.T) {
	primary := &stubBackend{name: "primary", err: errors.New("association failed")}
	fallback := &stubBackend{name: "fallback"}

	hookCalled := false
	d := NewDispatcher(primary, fallback, func(path string, err error) { hookCalled = true })

	assert.NoError(t, d.Dispatch(context.Background(), existingFile(t)))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
	assert.False(t, hookCalled)
}

func TestDispatcher_AllFailuresAreSwallowed(t *testing.T) {
	primary := &stubBackend{name: "primary", err: errors.New("association failed")}
	fallback := &stubBackend{name: "fallback", err: errors.New("no default printer")}

	var hookPath string
	var hookErr error
	d := NewDispatcher(primary, fallback, func(path string, err error) {
		hookPath = path
		hookErr = err
	})

	path := existingFile(t)
	assert.NoError(t, d.Dispatch(context.Background(), path))
	assert.Equal(t, path, hookPath)
	assert.ErrorContains(t, hookErr, "no default printer")
}

func TestDispatcher_NoFallbackConfigured(t *testing.T) {
	primary := &stubBackend{name: "primary", err: errors.New("lp failed")}

	var hookErr error
	d := NewDispatcher(primary, nil, func(path string, err error) { hookErr = err })

	assert.NoError(t, d.Dispatch(context.Background(), existingFile(t)))
	assert.ErrorContains(t, hookErr, "lp failed")
}

func TestProbeBackends(t *testing.T) {
	primary, fallback := ProbeBackends()
	require.NotNil(t, primary)

	if runtime.GOOS == "windows" {
		assert.Equal(t, "native-association", primary.Name())
		require.NotNil(t, fallback)
		assert.Equal(t, "explicit-printer", fallback.Name())
		return
	}
	assert.Contains(t, []string{"cups-lp", "unsupported"}, primary.Name())
	assert.Nil(t, fallback)
}

func TestUnsupportedBackend_IsNoOp(t *testing.T) {
	assert.NoError(t, unsupportedBackend{}.Print(context.Background(), "whatever.html"))
}
