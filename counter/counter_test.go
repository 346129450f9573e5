package counter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory PrimaryStore; when err is set every Incr fails.
type fakeStore struct {
	n   int64
	err error
}

func (f *fakeStore) Incr(_ context.Context, _ string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.n++
	return f.n, nil
}

func TestNextNumberPrimaryStore(t *testing.T) {
	svc := New(&fakeStore{}, filepath.Join(t.TempDir(), "counter"))

	seen := map[int64]bool{}
	var prev int64
	for i := 0; i < 10; i++ {
		n := svc.NextNumber(context.Background())
		assert.Greater(t, n, prev, "values must be strictly increasing")
		assert.False(t, seen[n], "value %d issued twice", n)
		seen[n] = true
		prev = n
	}
}

func TestNextNumberPrimaryFailureUsesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "counter")
	require.NoError(t, os.WriteFile(file, []byte("41"), 0o644))

	svc := New(&fakeStore{err: errors.New("connection refused")}, file)

	assert.Equal(t, int64(42), svc.NextNumber(context.Background()))
	assert.Equal(t, int64(43), svc.NextNumber(context.Background()))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "43", string(data))
}

func TestNextNumberNoPrimaryStartsFileAtOne(t *testing.T) {
	file := filepath.Join(t.TempDir(), "counter")
	svc := New(nil, file)

	assert.Equal(t, int64(1), svc.NextNumber(context.Background()))
	assert.Equal(t, int64(2), svc.NextNumber(context.Background()))
}

func TestNextNumberUnparsableFileDefaultsToZero(t *testing.T) {
	file := filepath.Join(t.TempDir(), "counter")
	require.NoError(t, os.WriteFile(file, []byte("not a number"), 0o644))

	svc := New(nil, file)
	assert.Equal(t, int64(1), svc.NextNumber(context.Background()))
}

func TestNextNumberFileWhitespaceTolerated(t *testing.T) {
	file := filepath.Join(t.TempDir(), "counter")
	require.NoError(t, os.WriteFile(file, []byte("  7\n"), 0o644))

	svc := New(nil, file)
	assert.Equal(t, int64(8), svc.NextNumber(context.Background()))
}

func TestNextNumberFileFailureSynthesizesRandom(t *testing.T) {
	// a path inside a missing directory makes the write fail
	file := filepath.Join(t.TempDir(), "no", "such", "dir", "counter")
	svc := New(&fakeStore{err: errors.New("down")}, file)

	for i := 0; i < 20; i++ {
		n := svc.NextNumber(context.Background())
		assert.GreaterOrEqual(t, n, int64(1000))
		assert.LessOrEqual(t, n, int64(9999))
	}
}
