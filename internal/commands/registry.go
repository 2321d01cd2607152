package commands

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // name and aliases map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, k := range keys {
		if _, exists := r.cmds[k]; exists {
			return fmt.Errorf("command name or alias already registered: %s", k)
		}
	}
	for _, k := range keys {
		r.cmds[k] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]Command)
	for _, cmd := range r.cmds {
		byName[cmd.Name()] = cmd
	}

	result := make([]Command, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		result = append(result, byName[name])
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
