package definition

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/goliatone/go-dynfields/pkg/fieldkind"
	"github.com/goliatone/go-dynfields/pkg/forms"
)

// ErrNameSpaceExhausted is returned when the save protocol cannot find a free
// machine name inside the random suffix space. The original retried forever;
// failing deterministically is the safer behaviour against a store that keeps
// reporting collisions.
var ErrNameSpaceExhausted = errors.New("definition: machine name suffix space exhausted")

// suffix draws stay comfortably above the 99-slot space so exhaustion only
// fires when the space is genuinely full.
const maxSuffixDraws = 200

// Bridge wires records to the kind registry, the store and the owner catalog.
// All read-path entry points tolerate stale or incompatible stored data by
// returning absent results instead of errors.
type Bridge struct {
	registry *fieldkind.Registry
	store    Store
	owners   *OwnerRegistry
	randInt  func(n int) int
}

// NewBridge constructs a bridge. A nil registry falls back to the shared
// default; store and owners may be nil for hosts that only use the read-path
// entry points.
func NewBridge(registry *fieldkind.Registry, store Store, owners *OwnerRegistry) *Bridge {
	if registry == nil {
		registry = fieldkind.Default()
	}
	return &Bridge{
		registry: registry,
		store:    store,
		owners:   owners,
		randInt:  rand.Intn,
	}
}

// bind resolves the record's kind and validates its option bag.
func (b *Bridge) bind(rec *Record, value any) (*fieldkind.BoundField, error) {
	kind, ok := b.registry.Get(rec.FieldType)
	if !ok {
		return nil, fmt.Errorf("definition: kind %q is not registered", rec.FieldType)
	}
	cfg := fieldkind.Config{
		Name:  rec.Name,
		Label: rec.Label,
		Value: value,
	}
	return fieldkind.Bind(kind, cfg, rec.Options)
}

// FieldTypeDisplay returns the display label of the record's kind, absent
// when the kind is no longer registered (stale stored data must not error).
func (b *Bridge) FieldTypeDisplay(rec *Record) (string, bool) {
	kind, ok := b.registry.Get(rec.FieldType)
	if !ok {
		return "", false
	}
	return kind.DisplayLabel(), true
}

// GenerateFormField constructs the record's control and attaches it to the
// form under the machine name. Kinds that opt out of data display are
// skipped; when the record is additionally marked invisible, any control
// already attached under the name is hidden rather than removed.
func (b *Bridge) GenerateFormField(form *forms.Form, rec *Record, value any) (*fieldkind.BoundField, error) {
	kind, ok := b.registry.Get(rec.FieldType)
	if ok && kind.DisplaysData() {
		field, err := b.bind(rec, value)
		if err != nil {
			return nil, err
		}
		ctrl, err := field.Construct()
		if err != nil {
			return nil, err
		}
		form.Attach(ctrl)
		return field, nil
	}
	if !rec.Visible {
		form.Hide(rec.Name)
	}
	return nil, nil
}

// Choices returns the record's choice list. Unknown kinds, invalid option
// bags and kinds without choices all yield an empty list.
func (b *Bridge) Choices(rec *Record) []forms.Choice {
	field, err := b.bind(rec, nil)
	if err != nil {
		return nil
	}
	choices, ok := field.Choices()
	if !ok {
		return nil
	}
	return choices
}

// Display renders the holder's stored value for this record. Unknown kinds
// and invalid option bags yield an absent result, never an error.
func (b *Bridge) Display(rec *Record, holder fieldkind.Holder) (string, bool) {
	field, err := b.bind(rec, nil)
	if err != nil {
		return "", false
	}
	return field.Display(holder)
}

// IsSystem reports whether the record's kind marks it as intrinsic to the
// owning entity. Unknown kinds are not system.
func (b *Bridge) IsSystem(rec *Record) bool {
	kind, ok := b.registry.Get(rec.FieldType)
	if !ok {
		return false
	}
	return kind.System()
}

// Save runs the full save protocol and persists the record:
//
//  1. derive the machine name from the label when absent
//  2. default a nil option bag to an empty object
//  3. a field literally named "code" is always visible
//  4. on first save, resolve name collisions with a random 1-99 suffix
//  5. a name matching a native owner attribute forces the System kind and
//     clears the option bag
//  6. recompute the system flag
//  7. persist, assigning identity and ordering position on first save
func (b *Bridge) Save(rec *Record) error {
	if rec == nil {
		return errors.New("definition: record is required")
	}
	if b.store == nil {
		return errors.New("definition: bridge has no store")
	}

	if rec.Name == "" {
		rec.Name = machineName(rec.Label)
	}
	if rec.Options == nil {
		rec.Options = map[string]any{}
	}
	if rec.Name == "code" {
		rec.Visible = true
	}

	if rec.ID == "" {
		if err := b.resolveNameCollision(rec); err != nil {
			return err
		}
	}

	if b.owners != nil {
		if owner, ok := b.owners.Get(rec.Model); ok && owner.HasAttribute(rec.Name) {
			rec.FieldType = fieldkind.KeySystem
			rec.Options = map[string]any{}
		}
	}
	rec.System = b.IsSystem(rec)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
		position, err := b.store.NextPosition(rec.Site, rec.Model)
		if err != nil {
			return fmt.Errorf("definition: assign position: %w", err)
		}
		rec.Position = position
	}
	return b.store.Put(rec)
}

func (b *Bridge) resolveNameCollision(rec *Record) error {
	base := rec.Name
	for draws := 0; ; draws++ {
		exists, err := b.store.NameExists(rec.Site, rec.Model, rec.Name, rec.ID)
		if err != nil {
			return fmt.Errorf("definition: name collision check: %w", err)
		}
		if !exists {
			return nil
		}
		if draws >= maxSuffixDraws {
			return fmt.Errorf("%w: base name %q", ErrNameSpaceExhausted, base)
		}
		rec.Name = base + strconv.Itoa(b.randInt(99)+1)
	}
}
