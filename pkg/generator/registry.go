package generator

import (
	"fmt"
	"sort"
)

// Registry maps generator names to factory functions
var Registry = map[string]func(Options) Generator{
	string(ModeFixed):      func(o Options) Generator { return NewFixedGenerator(o) },
	string(ModeRandomized): func(o Options) Generator { return NewRandomizedGenerator(o) },
}

// Get returns a generator by name
func Get(name string, opts Options) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return factory(opts), nil
}

// New returns the generator selected by opts.Mode, randomized when unset
func New(opts Options) (Generator, error) {
	opts = opts.withDefaults()
	return Get(string(opts.Mode), opts)
}

// List returns all available generator names, sorted
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
