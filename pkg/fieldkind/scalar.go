package fieldkind

import "github.com/goliatone/go-dynfields/pkg/forms"

func newEmailKind() Kind {
	return &baseKind{
		name:    "EmailField",
		label:   "Email",
		control: forms.ControlEmail,
		schema:  BaseSchema().Merge(nil),
	}
}

// integerKind renders a numeric input, or a slider when the slide option is
// set. The slide option is presentation-only and never reaches the control
// kwargs; it surfaces as a widget attribute instead.
type integerKind struct {
	baseKind
}

func newIntegerKind() *integerKind {
	return &integerKind{baseKind{
		name:    "IntegerField",
		label:   "Integer",
		control: forms.ControlNumber,
		widget:  &forms.Widget{Kind: forms.ControlNumber},
		schema: BaseSchema().Merge(Schema{
			"localize":  {Types: []OptionType{OptionBool}, Default: false, Control: forms.ControlCheckbox},
			"max_value": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
			"min_value": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
			"slide":     {Types: []OptionType{OptionBool}, Default: false, Control: forms.ControlCheckbox},
		}),
	}}
}

func (k *integerKind) widgetAttrs(f *BoundField) map[string]string {
	if !f.options.Bool("slide") {
		return f.cfg.WidgetAttrs
	}
	attrs := mergeAttrs(f.cfg.WidgetAttrs, map[string]string{"type": "range"})
	return attrs
}

func newFloatKind() Kind {
	return &baseKind{
		name:    "FloatField",
		label:   "Float",
		control: forms.ControlNumber,
		schema: BaseSchema().Merge(Schema{
			"localize":  {Types: []OptionType{OptionBool}, Default: false, Control: forms.ControlCheckbox},
			"max_value": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
			"min_value": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
		}),
	}
}

func newSingleLineTextKind() Kind {
	return &baseKind{
		name:    "SingleLineTextField",
		control: forms.ControlText,
		schema: BaseSchema().Merge(Schema{
			"max_length": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
			"min_length": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
		}),
	}
}

func newMultiLineTextKind() Kind {
	return &baseKind{
		name:    "MultiLineTextField",
		control: forms.ControlText,
		widget:  &forms.Widget{Kind: forms.ControlTextArea},
		schema:  BaseSchema().Merge(nil),
	}
}
