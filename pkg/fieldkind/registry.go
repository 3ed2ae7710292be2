package fieldkind

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-dynfields/pkg/forms"
)

// Registry keys for the built-in kinds. Keys are persisted inside field
// definition records, so they must stay stable across releases.
const (
	KeyBoolean        = "dynfields.BooleanField"
	KeyChoice         = "dynfields.ChoiceField"
	KeyMultipleChoice = "dynfields.MultipleChoiceField"
	KeyDate           = "dynfields.DateField"
	KeyDateTime       = "dynfields.DateTimeField"
	KeyTime           = "dynfields.TimeField"
	KeyEmail          = "dynfields.EmailField"
	KeyInteger        = "dynfields.IntegerField"
	KeyFloat          = "dynfields.FloatField"
	KeySingleLineText = "dynfields.SingleLineTextField"
	KeyMultiLineText  = "dynfields.MultiLineTextField"
	KeySystem         = "dynfields.SystemField"
	KeyComponent      = "dynfields.ComponentField"
	KeySubtitle       = "dynfields.SubtitleField"
)

const keyPrefix = "dynfields."

// ErrInvalidKind is returned when a kind fails registration validation.
var ErrInvalidKind = errors.New("fieldkind: invalid kind")

// Entry is one registry listing: the stable key and the kind's display label.
type Entry struct {
	Key   string
	Label string
}

// Registry is the process-wide catalog of field kinds. It is populated once
// at startup and read concurrently afterwards; re-registering a key replaces
// the previous kind.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry constructs a registry with the built-in kinds registered.
func NewRegistry() *Registry {
	reg := &Registry{kinds: make(map[string]Kind)}
	reg.registerBuiltins()
	return reg
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register stores the kind under a key derived from its name. Kinds without a
// name or an option schema fail validation.
func (r *Registry) Register(kind Kind) error {
	if kind == nil {
		return fmt.Errorf("%w: nil kind", ErrInvalidKind)
	}
	if kind.Name() == "" {
		return fmt.Errorf("%w: kind name is required", ErrInvalidKind)
	}
	if kind.OptionSchema() == nil {
		return fmt.Errorf("%w: kind %q declares no option schema", ErrInvalidKind, kind.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[keyPrefix+kind.Name()] = kind
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind Kind) {
	if err := r.Register(kind); err != nil {
		panic(err)
	}
}

// Get retrieves a kind by its stable key.
func (r *Registry) Get(key string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[key]
	return kind, ok
}

// Unregister removes a key. Removing an absent key is a no-op.
func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.kinds, key)
}

// All returns every registered kind as {key, label} entries sorted by key.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.kinds))
	for key, kind := range r.kinds {
		entries = append(entries, Entry{Key: key, Label: kind.DisplayLabel()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Choices returns the sorted enumeration as (key, label) pairs for populating
// a kind-selection control.
func (r *Registry) Choices() []forms.Choice {
	entries := r.All()
	choices := make([]forms.Choice, len(entries))
	for i, entry := range entries {
		choices[i] = forms.Choice{Value: entry.Key, Label: entry.Label}
	}
	return choices
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(newBooleanKind())
	r.MustRegister(newChoiceKind())
	r.MustRegister(newMultipleChoiceKind())
	r.MustRegister(newDateKind())
	r.MustRegister(newDateTimeKind())
	r.MustRegister(newTimeKind())
	r.MustRegister(newEmailKind())
	r.MustRegister(newIntegerKind())
	r.MustRegister(newFloatKind())
	r.MustRegister(newSingleLineTextKind())
	r.MustRegister(newMultiLineTextKind())
	r.MustRegister(newSystemKind())
	r.MustRegister(newComponentKind())
	r.MustRegister(newSubtitleKind())
}
