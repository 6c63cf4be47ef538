package chain

import (
	"fmt"
	"sync"

	"voidwave/internal/logging"
)

// Registry is an in-memory chain-id -> Definition map with an inverted tag
// index. Grounded on chaining/registry.py's ChainRegistry.
type Registry struct {
	mu     sync.RWMutex
	chains map[string]Definition
	tags   map[string]map[string]struct{}
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		chains: make(map[string]Definition),
		tags:   make(map[string]map[string]struct{}),
	}
}

// Register adds or replaces a chain definition under its own ID.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[def.ID] = def
	for _, tag := range def.Tags {
		if r.tags[tag] == nil {
			r.tags[tag] = make(map[string]struct{})
		}
		r.tags[tag][def.ID] = struct{}{}
	}
	logging.Chain("registered chain: %s (%s)", def.ID, def.Name)
}

// Unregister removes a chain by ID, reporting whether it existed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.chains[id]
	if !ok {
		return false
	}
	delete(r.chains, id)
	for _, tag := range def.Tags {
		delete(r.tags[tag], id)
	}
	return true
}

// Get returns the chain registered under id, or false if none.
func (r *Registry) Get(id string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.chains[id]
	return def, ok
}

// GetByTag returns every chain carrying tag.
func (r *Registry) GetByTag(tag string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.tags[tag]
	out := make([]Definition, 0, len(ids))
	for id := range ids {
		out = append(out, r.chains[id])
	}
	return out
}

// ListAll returns every registered chain definition.
func (r *Registry) ListAll() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.chains))
	for _, def := range r.chains {
		out = append(out, def)
	}
	return out
}

// ListIDs returns every registered chain ID.
func (r *Registry) ListIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.chains))
	for id := range r.chains {
		out = append(out, id)
	}
	return out
}

// ListTags returns every tag in use.
func (r *Registry) ListTags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		out = append(out, tag)
	}
	return out
}

// Compose deep-copies each source chain's steps, prefixes every step id with
// "<chain_id>.", rewrites every depends_on/binding/condition source_step with
// the same prefix, and links the first ready step(s) of each subsequent
// chain to the last step ids of the prior chain (only when that step had no
// prior dependencies). Mirrors ChainRegistry.compose.
func (r *Registry) Compose(newID string, ids ...string) (Definition, error) {
	if len(ids) == 0 {
		return Definition{}, fmt.Errorf("compose: at least one chain id required")
	}

	var steps []Step
	var prevStepIDs []string
	tagSet := make(map[string]struct{})

	for _, id := range ids {
		def, ok := r.Get(id)
		if !ok {
			return Definition{}, fmt.Errorf("compose: chain not found: %s", id)
		}
		for _, t := range def.Tags {
			tagSet[t] = struct{}{}
		}

		var theseStepIDs []string
		for _, step := range def.Steps {
			ns := cloneStep(step)
			ns.ID = id + "." + step.ID

			prefixed := make([]string, 0, len(step.DependsOn))
			for _, dep := range step.DependsOn {
				prefixed = append(prefixed, id+"."+dep)
			}
			ns.DependsOn = prefixed

			if len(prevStepIDs) > 0 && len(ns.DependsOn) == 0 {
				ns.DependsOn = append([]string(nil), prevStepIDs...)
			}

			if ns.TargetBinding != nil {
				ns.TargetBinding.SourceStep = id + "." + ns.TargetBinding.SourceStep
			}
			for i := range ns.OptionBindings {
				ns.OptionBindings[i].SourceStep = id + "." + ns.OptionBindings[i].SourceStep
			}
			if ns.Condition != nil {
				ns.Condition.SourceStep = id + "." + ns.Condition.SourceStep
			}

			steps = append(steps, ns)
			theseStepIDs = append(theseStepIDs, ns.ID)
		}
		prevStepIDs = theseStepIDs
	}

	if newID == "" {
		newID = "composed"
		for _, id := range ids {
			newID += "_" + id
		}
	}

	tags := make([]string, 0, len(tagSet)+1)
	for t := range tagSet {
		tags = append(tags, t)
	}
	tags = append(tags, "composed")

	return Definition{
		ID:          newID,
		Name:        "Composed: " + joinStrings(ids, ", "),
		Description: "Composed chain from: " + joinStrings(ids, ", "),
		Steps:       steps,
		Tags:        tags,
		Version:     "1.0",
	}, nil
}

// Extend deep-copies a base chain and appends new steps, each gaining a
// dependency on the base's last step ids unless it already declares
// dependencies. Mirrors ChainRegistry.extend.
func (r *Registry) Extend(baseID string, extra []Step, newID string) (Definition, error) {
	base, ok := r.Get(baseID)
	if !ok {
		return Definition{}, fmt.Errorf("extend: chain not found: %s", baseID)
	}

	steps := make([]Step, 0, len(base.Steps)+len(extra))
	lastStepIDs := make([]string, 0, len(base.Steps))
	for _, s := range base.Steps {
		steps = append(steps, cloneStep(s))
		lastStepIDs = append(lastStepIDs, s.ID)
	}

	for _, s := range extra {
		ns := cloneStep(s)
		if len(ns.DependsOn) == 0 {
			ns.DependsOn = append([]string(nil), lastStepIDs...)
		}
		steps = append(steps, ns)
	}

	if newID == "" {
		newID = baseID + "_extended"
	}

	return Definition{
		ID:              newID,
		Name:            base.Name + " (Extended)",
		Description:     "Extended version of " + base.Name,
		Steps:           steps,
		Tags:            append(append([]string(nil), base.Tags...), "extended"),
		Version:         "1.0",
		TargetType:      base.TargetType,
		PreflightAction: base.PreflightAction,
	}, nil
}

func joinStrings(ss []string, sep string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}
