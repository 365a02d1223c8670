package typedmap

import "sync"

// Registry interns labels: every call to Resolve with the same label returns
// the same Identity. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	symbols map[string]Identity
	logger  Logger
}

// RegistryOption is a function that configures a Registry
type RegistryOption func(*Registry)

// WithLogger sets the logger used by the registry
func WithLogger(logger Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		symbols: make(map[string]Identity),
		logger:  NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry used by For. It is
// created on first use and lives for the rest of the process.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Resolve returns the canonical identity for label, minting it on first use.
func (r *Registry) Resolve(label string) Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.symbols[label]; ok {
		return id
	}
	id := newIdentity(label)
	r.symbols[label] = id
	r.logger.Debug("interned label %q as %s", label, id)
	return id
}

// Lookup returns the identity already interned for label without minting one.
func (r *Registry) Lookup(label string) (Identity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.symbols[label]
	return id, ok
}

// Len returns the number of interned labels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.symbols)
}
