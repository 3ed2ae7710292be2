package fieldkind

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynfields/pkg/forms"
)

// ErrNoChoices is returned when a choice field is constructed with an empty
// or unparseable choice list.
var ErrNoChoices = errors.New("fieldkind: choice field requires a non-empty choice list")

// choiceKind renders a single-select over an admin-defined choice list. The
// "choices" option accepts either a list or a JSON-encoded string of one,
// since legacy bags store the serialized form.
type choiceKind struct {
	baseKind
}

func newChoiceKind() *choiceKind {
	return &choiceKind{baseKind{
		name:    "ChoiceField",
		label:   "Choices",
		control: forms.ControlSelect,
		schema: BaseSchema().Merge(Schema{
			"choices": {Types: []OptionType{OptionList, OptionString}, Default: "", Control: forms.ControlTextArea},
		}),
	}}
}

// choiceValues parses the choices option into plain values. Unparseable JSON
// degrades to an empty list.
func (k *choiceKind) choiceValues(f *BoundField) []string {
	raw := f.options.Get("choices")
	if s, ok := raw.(string); ok {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		var decoded []any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil
		}
		raw = decoded
	}
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(list))
	for _, item := range list {
		values = append(values, stringify(item))
	}
	return values
}

func (k *choiceKind) choicePairs(f *BoundField) []forms.Choice {
	values := k.choiceValues(f)
	pairs := make([]forms.Choice, 0, len(values))
	for _, value := range values {
		pairs = append(pairs, forms.Choice{Value: value, Label: value})
	}
	return pairs
}

// InitialValue returns the stored value when it is one of the choices, or
// falls back to treating it as an index into the choice list.
func (k *choiceKind) InitialValue(f *BoundField) any {
	if f.cfg.Value == nil {
		return nil
	}
	choices := k.choiceValues(f)
	value := stringify(f.cfg.Value)
	for _, choice := range choices {
		if choice == value {
			return value
		}
	}
	if idx, err := strconv.Atoi(value); err == nil && idx >= 0 && idx < len(choices) {
		return choices[idx]
	}
	return nil
}

// Construct prepends a blank option when the field is not required so the
// select can represent "no answer".
func (k *choiceKind) Construct(f *BoundField, overrides ...forms.Option) (*forms.Control, error) {
	pairs := k.choicePairs(f)
	if len(pairs) == 0 {
		return nil, ErrNoChoices
	}
	if !f.options.Bool("required") {
		pairs = append([]forms.Choice{{Value: "", Label: "---------"}}, pairs...)
	}
	return k.baseKind.Construct(f, append([]forms.Option{forms.WithChoices(pairs)}, overrides...)...)
}

// Display returns the stored value verbatim when it is still a defined
// choice, absent otherwise.
func (k *choiceKind) Display(f *BoundField, holder Holder) (string, bool) {
	raw, ok := holder.DataValue(f.cfg.Name)
	if !ok || raw == nil {
		return "", false
	}
	value := stringify(raw)
	for _, choice := range k.choiceValues(f) {
		if choice == value {
			return value, true
		}
	}
	return "", false
}

// multipleChoiceKind extends the choice kind with multi-select semantics:
// stored values are lists, legacy values are comma-joined index strings.
type multipleChoiceKind struct {
	choiceKind
}

func newMultipleChoiceKind() *multipleChoiceKind {
	kind := &multipleChoiceKind{}
	kind.baseKind = baseKind{
		name:    "MultipleChoiceField",
		label:   "Multiple Choices",
		control: forms.ControlMultiSelect,
		schema: BaseSchema().Merge(Schema{
			"choices": {Types: []OptionType{OptionList, OptionString}, Default: "", Control: forms.ControlTextArea},
		}),
	}
	return kind
}

func (k *multipleChoiceKind) InitialValue(f *BoundField) any {
	switch value := f.cfg.Value.(type) {
	case nil:
		return nil
	case []any:
		return value
	case []string:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = item
		}
		return out
	case string:
		choices := k.choiceValues(f)
		var out []any
		for _, part := range strings.Split(value, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || idx < 0 || idx >= len(choices) {
				continue
			}
			out = append(out, choices[idx])
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// Construct never prepends a blank option; deselecting everything already
// expresses "no answer" on a multi-select.
func (k *multipleChoiceKind) Construct(f *BoundField, overrides ...forms.Option) (*forms.Control, error) {
	pairs := k.choicePairs(f)
	if len(pairs) == 0 {
		return nil, ErrNoChoices
	}
	return k.baseKind.Construct(f, append([]forms.Option{forms.WithChoices(pairs)}, overrides...)...)
}

// Display maps each selected value to its choice label, joined by ", ".
// A null stored value renders as an empty string.
func (k *multipleChoiceKind) Display(f *BoundField, holder Holder) (string, bool) {
	raw, ok := holder.DataValue(f.cfg.Name)
	if !ok {
		return "", false
	}
	if raw == nil {
		return "", true
	}

	selected := make(map[string]struct{})
	switch value := raw.(type) {
	case []any:
		for _, item := range value {
			selected[stringify(item)] = struct{}{}
		}
	case []string:
		for _, item := range value {
			selected[item] = struct{}{}
		}
	default:
		selected[stringify(value)] = struct{}{}
	}

	var labels []string
	for _, pair := range k.choicePairs(f) {
		if _, ok := selected[pair.Value]; ok {
			labels = append(labels, pair.Label)
		}
	}
	return strings.Join(labels, ", "), true
}
