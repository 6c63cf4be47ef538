// Package toolspec describes every supported external tool via the
// {build_command, parse_output} capability set (spec §4.3) and maintains the
// name->spec registry the chain executor consults. Grounded on
// _examples/theRebelliousNerd-codenerd/internal/tools/registry.go's
// mutex+map Registry shape, with each concrete Spec grounded on its
// corresponding _examples/original_source/src/voidwave/tools/*.py wrapper.
package toolspec

import (
	"fmt"
	"sort"
	"sync"

	"voidwave/internal/logging"
)

// Options is the free-form per-invocation option map a chain step supplies.
type Options map[string]any

// Output is the structured result parse_output produces from raw tool text.
type Output map[string]any

// Spec is the capability set every supported tool implements.
type Spec interface {
	// Name is the tool's registry key, normally also its binary name.
	Name() string

	// BuildCommand constructs argv (excluding the resolved binary path)
	// deterministically from the target and option map.
	BuildCommand(target string, options Options) ([]string, error)

	// ParseOutput turns raw captured stdout into a structured map. When the
	// tool emits a machine-readable format, that format is parsed first with
	// a documented fallback to text scraping on parse failure.
	ParseOutput(raw string) Output
}

// Registry is a concurrency-safe name->Spec table.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register adds spec under its own Name(). Returns an error if that name is
// already registered.
func (r *Registry) Register(spec Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.specs[spec.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrSpecAlreadyRegistered, spec.Name())
	}
	r.specs[spec.Name()] = spec
	logging.ToolSpec("registered tool spec: %s", spec.Name())
	return nil
}

// MustRegister registers spec and panics on error; used for static
// registration of the builtin specs at startup.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Get returns the spec registered under name, or nil if none.
func (r *Registry) Get(name string) Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.specs[name]
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.specs[name]
	return ok
}

// Names returns every registered tool name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a registry pre-populated with every concrete spec this
// package ships.
func Builtin() *Registry {
	r := NewRegistry()
	r.MustRegister(NewNmap())
	r.MustRegister(NewMasscan())
	r.MustRegister(NewHashcat())
	r.MustRegister(NewFfuf())
	r.MustRegister(NewSubfinder())
	r.MustRegister(NewNuclei())
	r.MustRegister(NewAirodump())
	r.MustRegister(NewAircrack())
	r.MustRegister(NewAireplay())
	r.MustRegister(NewReaver())
	r.MustRegister(NewWash())
	r.MustRegister(NewHydra())
	r.MustRegister(NewJohn())
	r.MustRegister(NewSqlmap())
	r.MustRegister(NewWhatweb())
	r.MustRegister(NewNikto())
	r.MustRegister(NewGobuster())
	return r
}
