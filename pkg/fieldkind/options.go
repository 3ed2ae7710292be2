package fieldkind

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-dynfields/pkg/forms"
)

// OptionType names a semantic type an option value may carry. Option bags
// arrive from JSON, so integer checks also accept floats holding integral
// values.
type OptionType string

const (
	OptionBool   OptionType = "bool"
	OptionInt    OptionType = "int"
	OptionString OptionType = "string"
	OptionList   OptionType = "list"
	OptionAny    OptionType = "any"
)

// ErrUnknownOption is returned when an option bag carries a key the kind's
// schema does not declare.
var ErrUnknownOption = errors.New("fieldkind: unknown option")

// OptionTypeError reports a value whose concrete type matches none of an
// option's accepted types.
type OptionTypeError struct {
	Option string
	Types  []OptionType
	Value  any
}

func (e *OptionTypeError) Error() string {
	return fmt.Sprintf("fieldkind: option %q accepts %v or null, got %T", e.Option, e.Types, e.Value)
}

// OptionSpec declares a single schema entry: the accepted type set, the
// default value, and the control an admin UI should edit the option with.
type OptionSpec struct {
	Types   []OptionType
	Default any
	Control forms.ControlType
}

// Schema maps option names to their specs. Schemas are composed explicitly at
// kind construction: a kind's own declarations are merged over the base
// schema with any exclusions applied, never via hierarchy introspection.
type Schema map[string]OptionSpec

// BaseSchema returns the options every kind supports unless excluded.
func BaseSchema() Schema {
	return Schema{
		"help_text": {Types: []OptionType{OptionString}, Default: "", Control: forms.ControlTextArea},
		"required":  {Types: []OptionType{OptionBool}, Default: false, Control: forms.ControlCheckbox},
	}
}

// Merge composes a schema from s overlaid with over, dropping excluded keys.
// Neither input is mutated.
func (s Schema) Merge(over Schema, exclude ...string) Schema {
	excluded := make(map[string]struct{}, len(exclude))
	for _, key := range exclude {
		excluded[key] = struct{}{}
	}
	merged := make(Schema, len(s)+len(over))
	for key, spec := range s {
		if _, skip := excluded[key]; skip {
			continue
		}
		merged[key] = spec
	}
	for key, spec := range over {
		if _, skip := excluded[key]; skip {
			continue
		}
		merged[key] = spec
	}
	return merged
}

// Names returns the schema's option names sorted for deterministic listings.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewValues returns a value set seeded with the schema defaults.
func (s Schema) NewValues() *Values {
	values := make(map[string]any, len(s))
	for name, spec := range s {
		values[name] = spec.Default
	}
	return &Values{schema: s, values: values}
}

// Values holds validated option values for one bound field. Assignment is the
// validation point: unknown keys and type mismatches fail synchronously so
// untrusted option bags are rejected before construction.
type Values struct {
	schema Schema
	values map[string]any
}

// Set assigns one option value. A nil value always succeeds.
func (v *Values) Set(key string, value any) error {
	spec, ok := v.schema[key]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOption, key)
	}
	if value == nil {
		v.values[key] = nil
		return nil
	}
	normalized, ok := matchOptionTypes(value, spec.Types)
	if !ok {
		return &OptionTypeError{Option: key, Types: spec.Types, Value: value}
	}
	v.values[key] = normalized
	return nil
}

// Apply assigns every entry of an option bag, stopping at the first failure.
func (v *Values) Apply(bag map[string]any) error {
	for _, key := range sortedKeys(bag) {
		if err := v.Set(key, bag[key]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value for key, or nil when the schema lacks it.
func (v *Values) Get(key string) any {
	return v.values[key]
}

// Bool returns the value for key when it holds a true boolean.
func (v *Values) Bool(key string) bool {
	b, _ := v.values[key].(bool)
	return b
}

// Int returns the integer value for key and whether one is set.
func (v *Values) Int(key string) (int, bool) {
	n, ok := v.values[key].(int)
	return n, ok
}

// String returns the string value for key, empty when unset or mistyped.
func (v *Values) String(key string) string {
	s, _ := v.values[key].(string)
	return s
}

func matchOptionTypes(value any, types []OptionType) (any, bool) {
	for _, t := range types {
		switch t {
		case OptionAny:
			return value, true
		case OptionBool:
			if b, ok := value.(bool); ok {
				return b, true
			}
		case OptionString:
			if s, ok := value.(string); ok {
				return s, true
			}
		case OptionInt:
			if n, ok := intValue(value); ok {
				return n, true
			}
		case OptionList:
			if list, ok := listValue(value); ok {
				return list, true
			}
		}
	}
	return nil, false
}

func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if float64(int(v)) == v {
			return int(v), true
		}
	}
	return 0, false
}

func listValue(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(bag map[string]any) []string {
	keys := make([]string, 0, len(bag))
	for key := range bag {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
