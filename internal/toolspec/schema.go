package toolspec

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaProvider is an optional capability a Spec can implement to declare
// the JSON-schema shape its option map must satisfy. Not every tool needs
// one — specs whose options are all permissive strings/bools skip it.
type SchemaProvider interface {
	// OptionSchema returns a JSON Schema document (as JSON text) describing
	// the option map, or "" to skip validation entirely.
	OptionSchema() string
}

// ValidateOptions checks options against spec's declared schema, if any. A
// spec that doesn't implement SchemaProvider, or returns an empty schema,
// is always considered valid.
func ValidateOptions(spec Spec, options Options) error {
	provider, ok := spec.(SchemaProvider)
	if !ok {
		return nil
	}
	raw := provider.OptionSchema()
	if raw == "" {
		return nil
	}

	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		return fmt.Errorf("%s: unmarshal option schema: %w", spec.Name(), err)
	}

	c := jsonschema.NewCompiler()
	resource := spec.Name() + "-options.json"
	if err := c.AddResource(resource, schemaDoc); err != nil {
		return fmt.Errorf("%s: add option schema resource: %w", spec.Name(), err)
	}
	compiled, err := c.Compile(resource)
	if err != nil {
		return fmt.Errorf("%s: compile option schema: %w", spec.Name(), err)
	}

	// Options values (ints, bools, []string) round-trip through JSON to the
	// plain any-tree jsonschema expects (map[string]any/[]any/float64/string).
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("%s: marshal options: %w", spec.Name(), err)
	}
	var optionsDoc any
	if err := json.Unmarshal(optionsJSON, &optionsDoc); err != nil {
		return fmt.Errorf("%s: unmarshal options: %w", spec.Name(), err)
	}

	if err := compiled.Validate(optionsDoc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOptions, spec.Name(), err)
	}
	return nil
}
