package definition

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-dynfields/pkg/forms"
)

// Owner describes one owning-entity type that can carry dynamic fields: its
// model name, the label shown in the admin model selector, and the attribute
// names defined natively on the entity. Native attributes take precedence
// over dynamic fields of the same name.
type Owner struct {
	Name       string
	Label      string
	Attributes []string
}

// HasAttribute reports whether the owner natively defines the attribute.
func (o Owner) HasAttribute(name string) bool {
	for _, attr := range o.Attributes {
		if attr == name {
			return true
		}
	}
	return false
}

// OwnerRegistry is the explicit catalog of owning-entity descriptors,
// populated at startup in place of any runtime type discovery.
type OwnerRegistry struct {
	mu     sync.RWMutex
	owners map[string]Owner
}

// NewOwnerRegistry returns an empty registry.
func NewOwnerRegistry() *OwnerRegistry {
	return &OwnerRegistry{owners: make(map[string]Owner)}
}

// Register stores an owner descriptor under its model name.
func (r *OwnerRegistry) Register(owner Owner) error {
	if owner.Name == "" {
		return fmt.Errorf("definition: owner name is required")
	}
	if owner.Label == "" {
		owner.Label = owner.Name
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[owner.Name] = owner
	return nil
}

// Get retrieves an owner descriptor by model name.
func (r *OwnerRegistry) Get(name string) (Owner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.owners[name]
	return owner, ok
}

// Choices returns (model name, label) pairs sorted by name for populating
// the admin model selector.
func (r *OwnerRegistry) Choices() []forms.Choice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.owners))
	for name := range r.owners {
		names = append(names, name)
	}
	sort.Strings(names)

	choices := make([]forms.Choice, len(names))
	for i, name := range names {
		choices[i] = forms.Choice{Value: name, Label: r.owners[name].Label}
	}
	return choices
}
