package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"incubator/pkg/jobs"
)

type reloadResult struct {
	version uint64
	err     error
}

func collect(results chan reloadResult) func(uint64, error) {
	return func(v uint64, err error) {
		select {
		case results <- reloadResult{v, err}:
		default:
		}
	}
}

// replaceFile swaps content into path with a rename so the watcher never sees a partial write.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := filepath.Join(t.TempDir(), filepath.Base(path))
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1"}]`), 0o600))

	store, err := Open(context.Background(), DirLoader(dir))
	require.NoError(t, err)

	w, err := NewWatcher(dir, store, nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	results := make(chan reloadResult, 4)
	w.OnReload = collect(results)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	replaceFile(t, path, `[{"id":"1"},{"id":"2"}]`)

	select {
	case r := <-results:
		require.NoError(t, r.err)
		require.Equal(t, uint64(2), r.version)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	got, _ := store.Jobs()
	require.Len(t, got, 2)
}

func TestWatcher_RejectsDuplicateAndKeepsSnapshot(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1"}]`), 0o600))

	store, err := NewStore(Data{Jobs: []jobs.Job{{ID: "1"}}})
	require.NoError(t, err)

	w, err := NewWatcher(dir, store, nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	results := make(chan reloadResult, 4)
	w.OnReload = collect(results)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	replaceFile(t, path, `[{"id":"1"},{"id":"1"}]`)

	select {
	case r := <-results:
		require.ErrorIs(t, r.err, ErrDuplicateID)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	_, version := store.Jobs()
	require.Equal(t, uint64(1), version)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir(), &Store{}, nil)
	require.NoError(t, err)
	w.Stop()
}
