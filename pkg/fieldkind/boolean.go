package fieldkind

import (
	"github.com/goliatone/go-dynfields/pkg/boolcode"
	"github.com/goliatone/go-dynfields/pkg/forms"
)

// booleanKind stores a packed {bool, comment} JSON payload behind a text
// control so clearing the visible widget never wipes the stored value. The
// presentation is a composite widget: a tri-state radio plus an optional
// comment input.
type booleanKind struct {
	baseKind
}

func newBooleanKind() *booleanKind {
	return &booleanKind{baseKind{
		name:    "BooleanField",
		label:   "Boolean",
		control: forms.ControlText,
		schema: BaseSchema().Merge(Schema{
			"has_comment":   {Types: []OptionType{OptionBool}, Default: false, Control: forms.ControlCheckbox},
			"not_available": {Types: []OptionType{OptionBool}, Default: false, Control: forms.ControlCheckbox},
		}, "required"),
	}}
}

func (k *booleanKind) radioChoices(f *BoundField) []forms.Choice {
	choices := []forms.Choice{
		{Value: "3", Label: boolcode.Yes.String()},
		{Value: "2", Label: boolcode.No.String()},
	}
	if f.options.Bool("not_available") {
		choices = append([]forms.Choice{{Value: "1", Label: boolcode.Unset.String()}}, choices...)
	}
	return choices
}

func (k *booleanKind) Construct(f *BoundField, overrides ...forms.Option) (*forms.Control, error) {
	parts := []forms.Widget{{Kind: forms.ControlRadio, Choices: k.radioChoices(f)}}
	if f.options.Bool("has_comment") {
		parts = append(parts, forms.Widget{Kind: forms.ControlText})
	}
	composite := &forms.Widget{
		Kind:  forms.ControlComposite,
		Parts: parts,
		Attrs: f.cfg.WidgetAttrs,
	}
	return k.baseKind.Construct(f, append([]forms.Option{forms.WithWidget(composite)}, overrides...)...)
}

func (k *booleanKind) Display(f *BoundField, holder Holder) (string, bool) {
	raw, ok := holder.DataValue(f.cfg.Name)
	if !ok {
		return "", false
	}

	if s, isString := raw.(string); isString {
		if value, packed := boolcode.DecodeStrict(s); packed {
			label := value.Code.String()
			if f.options.Bool("has_comment") {
				return label + ". Comment: " + value.Comment, true
			}
			return label, true
		}
		return boolcode.Coerce(s).String(), true
	}
	return boolcode.Coerce(raw).String(), true
}
