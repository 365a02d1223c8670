package typedmap

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps debug lines for assertions
type recordingLogger struct {
	DefaultLogger
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()

	a := r.Resolve("ALPHA")
	b := r.Resolve("ALPHA")
	c := r.Resolve("BETA")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "ALPHA", a.Label())
	assert.Equal(t, 2, r.Len())
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup("MISSING")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())

	id := r.Resolve("PRESENT")
	found, ok := r.Lookup("PRESENT")
	require.True(t, ok)
	assert.Equal(t, id, found)
}

func TestRegistryLogsNewLabelsOnly(t *testing.T) {
	logger := &recordingLogger{}
	r := NewRegistry(WithLogger(logger))

	r.Resolve("ONCE")
	r.Resolve("ONCE")
	r.Resolve("TWICE")

	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[0], `"ONCE"`)
	assert.Contains(t, logger.lines[1], `"TWICE"`)
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	r := NewRegistry(WithLogger(nil))
	require.NotNil(t, r.logger)
	assert.NotPanics(t, func() { r.Resolve("SAFE") })
}

func TestDefaultRegistryIsShared(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())

	id := DefaultRegistry().Resolve("registry_test.DEFAULT")
	assert.Equal(t, id, For[string]("registry_test.DEFAULT").Identity())
}

func TestRegistryConcurrentResolve(t *testing.T) {
	r := NewRegistry()

	const workers = 16
	results := make([]Identity, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve("CONCURRENT")
		}(i)
	}
	wg.Wait()

	for _, id := range results {
		assert.Equal(t, results[0], id)
	}
	assert.Equal(t, 1, r.Len())
}
