// Package fieldkind implements the metadata-driven field construction
// protocol: a closed set of field kinds, each carrying a validated option
// schema and the rules for turning stored configuration into a live control,
// an initial value, and a display string. Kinds are resolved through the
// process-wide Registry by the stable key persisted in field definitions.
package fieldkind

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynfields/pkg/forms"
)

// Holder exposes the owning record a display value is read from: the dynamic
// data bag plus the entity's native attributes (for system kinds).
type Holder interface {
	DataValue(name string) (any, bool)
	Attribute(name string) (any, bool)
}

// Config is the per-definition state a kind is bound with.
type Config struct {
	Name        string
	Label       string
	Value       any
	WidgetAttrs map[string]string
}

// Kind describes one registered field kind. Behaviour methods receive the
// bound field so shared implementations can dispatch back through the
// concrete kind.
type Kind interface {
	Name() string
	DisplayLabel() string
	OptionSchema() Schema
	System() bool
	DisplaysData() bool

	Construct(f *BoundField, overrides ...forms.Option) (*forms.Control, error)
	InitialValue(f *BoundField) any
	Display(f *BoundField, holder Holder) (string, bool)
}

// choiceSource is implemented by kinds that expose a choice list.
type choiceSource interface {
	choicePairs(f *BoundField) []forms.Choice
}

// widgetAttrSource lets a kind adjust widget attributes during construction.
type widgetAttrSource interface {
	widgetAttrs(f *BoundField) map[string]string
}

// BoundField pairs a kind with one definition's configuration and validated
// option values.
type BoundField struct {
	kind    Kind
	cfg     Config
	options *Values
}

// Bind validates bag against the kind's option schema and returns the bound
// field. Unknown keys and mistyped values fail with the option errors.
func Bind(kind Kind, cfg Config, bag map[string]any) (*BoundField, error) {
	values := kind.OptionSchema().NewValues()
	if err := values.Apply(bag); err != nil {
		return nil, err
	}
	return &BoundField{kind: kind, cfg: cfg, options: values}, nil
}

// Kind returns the kind the field was bound with.
func (f *BoundField) Kind() Kind { return f.kind }

// Name returns the machine name the field attaches under.
func (f *BoundField) Name() string { return f.cfg.Name }

// Options exposes the validated option values.
func (f *BoundField) Options() *Values { return f.options }

// Construct builds the live control, applying caller overrides last.
func (f *BoundField) Construct(overrides ...forms.Option) (*forms.Control, error) {
	return f.kind.Construct(f, overrides...)
}

// InitialValue computes the representation the control expects.
func (f *BoundField) InitialValue() any {
	return f.kind.InitialValue(f)
}

// Display renders the persisted value for the holder as a human-readable
// string. The second return reports whether a value was produced.
func (f *BoundField) Display(holder Holder) (string, bool) {
	return f.kind.Display(f, holder)
}

// Choices returns the field's choice list when the kind defines one.
func (f *BoundField) Choices() ([]forms.Choice, bool) {
	if src, ok := f.kind.(choiceSource); ok {
		return src.choicePairs(f), true
	}
	return nil, false
}

// baseKind supplies the shared descriptor state and default behaviour the
// concrete kinds embed.
type baseKind struct {
	name     string
	label    string
	control  forms.ControlType
	widget   *forms.Widget
	schema   Schema
	system   bool
	hideData bool
}

func (k *baseKind) Name() string         { return k.name }
func (k *baseKind) OptionSchema() Schema { return k.schema }
func (k *baseKind) System() bool         { return k.system }
func (k *baseKind) DisplaysData() bool   { return !k.hideData }

// DisplayLabel returns the explicit label when set, otherwise a label derived
// from the kind name.
func (k *baseKind) DisplayLabel() string {
	if k.label != "" {
		return k.label
	}
	return labelFromName(k.name)
}

// InitialValue defaults to the stored value untouched.
func (k *baseKind) InitialValue(f *BoundField) any {
	return f.cfg.Value
}

// Display defaults to reading the machine name out of the holder's data bag.
func (k *baseKind) Display(f *BoundField, holder Holder) (string, bool) {
	value, ok := holder.DataValue(f.cfg.Name)
	if !ok || value == nil {
		return "", false
	}
	return stringify(value), true
}

// Construct builds a control from the kind descriptor plus the bound option
// values. Constructed controls are never required; the "required" option only
// influences choice handling. Caller overrides are applied last and win.
func (k *baseKind) Construct(f *BoundField, overrides ...forms.Option) (*forms.Control, error) {
	ctrl := &forms.Control{
		Name:     f.cfg.Name,
		Type:     k.control,
		Label:    f.cfg.Label,
		Initial:  f.kind.InitialValue(f),
		HelpText: f.options.String("help_text"),
		Localize: f.options.Bool("localize"),
	}
	if n, ok := f.options.Int("min_value"); ok {
		ctrl.MinValue = &n
	}
	if n, ok := f.options.Int("max_value"); ok {
		ctrl.MaxValue = &n
	}
	if n, ok := f.options.Int("min_length"); ok {
		ctrl.MinLength = &n
	}
	if n, ok := f.options.Int("max_length"); ok {
		ctrl.MaxLength = &n
	}

	attrs := f.cfg.WidgetAttrs
	if src, ok := f.kind.(widgetAttrSource); ok {
		attrs = src.widgetAttrs(f)
	}
	if k.widget != nil {
		widget := *k.widget
		widget.Attrs = mergeAttrs(widget.Attrs, attrs)
		ctrl.Widget = &widget
	} else if len(attrs) > 0 {
		ctrl.Attrs = mergeAttrs(nil, attrs)
	}

	for _, override := range overrides {
		override(ctrl)
	}
	return ctrl, nil
}

func mergeAttrs(base, extra map[string]string) map[string]string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(extra))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range extra {
		out[key] = value
	}
	return out
}

// stringify renders a stored value the way an admin listing shows it. Floats
// holding integral values drop the fractional part since JSON decoding turns
// stored integers into float64.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if float64(int64(v)) == v {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

var capitalGroups = regexp.MustCompile(`[A-Z]+[a-z0-9]*`)

// labelFromName derives a display label from a kind identifier: a trailing
// "Field" suffix is dropped and capital-letter groups become words.
func labelFromName(name string) string {
	name = strings.TrimSuffix(name, "Field")
	words := capitalGroups.FindAllString(name, -1)
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, " ")
}
