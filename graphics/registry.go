package graphics

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrUnknownBackend is returned by Open for a name nobody registered.
	ErrUnknownBackend = errors.New("graphics: unknown backend")

	// ErrInit wraps driver initialization failures.
	ErrInit = errors.New("graphics: backend initialization failed")
)

// Factory creates a driver Context. For GL-backed drivers the window's
// context must already be current on the calling thread.
type Factory func() (Context, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Register registers a driver factory with the given name.
// This function is typically called from init() in driver packages:
//
//	func init() {
//	    graphics.Register("opengl", New)
//	}
//
// Register panics if factory is nil or if name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("graphics: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("graphics: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a driver from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Backends returns the sorted names of all registered drivers.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open creates a Context from the driver registered under name.
// Factory errors are wrapped with ErrInit.
func Open(name string) (Context, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownBackend, name, Backends())
	}
	ctx, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInit, name, err)
	}
	return ctx, nil
}
