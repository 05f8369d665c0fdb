package model

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownModel is returned when a model name is not registered
var ErrUnknownModel = errors.New("unknown model")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Descriptor)
)

// Register adds a model descriptor to the registry, typically from an init
// function. Registering a duplicate name panics.
func Register(d *Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[d.Name]; exists {
		panic(fmt.Sprintf("model %q registered twice", d.Name))
	}
	registry[d.Name] = d
}

// Lookup resolves a model descriptor by name
func Lookup(name string) (*Descriptor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return d, nil
}

// Names returns the registered model names in sorted order
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
