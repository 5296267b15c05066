package kernelbridge

import (
	"context"
	"sort"
	"sync"

	"github.com/wippyai/kernel-bridge/errors"
)

// Binding is a host-side adapter exposing the kernel through one host
// boundary. Implementations hold no call state: equal inputs produce
// bit-identical results on every Compute call.
type Binding interface {
	// Name identifies the binding ("vm", "lua").
	Name() string

	// Compute routes one call through the binding's host boundary.
	// The call is synchronous and blocking; it cannot be cancelled
	// mid-loop, so callers schedule large counts off latency-sensitive
	// goroutines themselves.
	Compute(ctx context.Context, iterations uint64, param float64) (float64, error)

	// Close releases host resources. The binding is unusable afterwards.
	Close(ctx context.Context) error
}

// OpenFunc constructs a ready-to-call binding.
type OpenFunc func(ctx context.Context) (Binding, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]OpenFunc)
)

// Register makes a binding available under name. It is called from init
// functions in tag-guarded files, so a duplicate name is a build mistake and
// panics rather than returning an error.
func Register(name string, open OpenFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("kernelbridge: binding name cannot be empty")
	}
	if _, dup := registry[name]; dup {
		panic("kernelbridge: duplicate binding " + name)
	}
	registry[name] = open
}

// Open constructs the named binding, or fails with a not_found error when the
// current build does not include it.
func Open(ctx context.Context, name string) (Binding, error) {
	registryMu.RLock()
	open, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.NotFound(errors.PhaseHost, "binding "+name+" not in this build")
	}
	return open(ctx)
}

// Bindings returns the names of all bindings linked into this build, sorted.
func Bindings() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
