package platform

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gldraw/internal/logging"
)

var (
	// ErrUnknownDriver is returned by Open for a name nobody registered.
	ErrUnknownDriver = errors.New("platform: unknown driver")

	// ErrInit is returned when the window system cannot be initialized.
	ErrInit = errors.New("platform: initialization failed")

	// ErrWindowCreation is returned when the window or its context cannot
	// be created.
	ErrWindowCreation = errors.New("platform: window creation failed")
)

// Opener opens a window for a driver.
type Opener func(cfg WindowConfig) (Window, error)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Opener)
)

// Register makes a driver available by name.
// It panics if open is nil or the name is already registered.
func Register(name string, open Opener) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if open == nil {
		panic("platform: Register opener is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("platform: Register called twice for driver " + name)
	}
	drivers[name] = open
}

// Unregister removes a driver. It exists for tests.
func Unregister(name string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	delete(drivers, name)
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open opens a window with the named driver.
func Open(name string, cfg WindowConfig) (Window, error) {
	driversMu.RLock()
	open, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownDriver, name, Drivers())
	}
	win, err := open(cfg)
	if err != nil {
		return nil, err
	}
	logging.Logger().Info("platform: window opened",
		"driver", name, "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return win, nil
}
