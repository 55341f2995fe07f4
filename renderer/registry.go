package renderer

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new renderer instance.
// Factories are registered via Register() and called by New().
type Factory func() Renderer

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a renderer factory with the given name.
// This function is typically called from init() in renderer packages:
//
//	func init() {
//	    renderer.Register("python3", func() renderer.Renderer {
//	        return python.New()
//	    })
//	}
//
// Register panics if factory is nil or a renderer with the same name is
// already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("renderer: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("renderer: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a renderer from the registry.
// If the renderer is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a new renderer instance by name.
// Returns an error if the renderer is not registered; the message includes
// a hint about forgotten imports.
func New(name string) (Renderer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("renderer: unknown renderer %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Must creates a new renderer instance by name, panicking on error.
func Must(name string) Renderer {
	r, err := New(name)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the registered renderer names in alphabetical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a renderer with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
