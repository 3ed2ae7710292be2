package fieldkind

import "github.com/goliatone/go-dynfields/pkg/forms"

func localizeSchema(defaultOn bool) Schema {
	return BaseSchema().Merge(Schema{
		"localize": {Types: []OptionType{OptionBool}, Default: defaultOn, Control: forms.ControlCheckbox},
	})
}

func newDateKind() Kind {
	return &baseKind{
		name:    "DateField",
		label:   "Date",
		control: forms.ControlDate,
		schema:  localizeSchema(true),
	}
}

func newDateTimeKind() Kind {
	return &baseKind{
		name:    "DateTimeField",
		label:   "Date and Time",
		control: forms.ControlDateTime,
		schema:  localizeSchema(true),
	}
}

func newTimeKind() Kind {
	return &baseKind{
		name:    "TimeField",
		label:   "Time",
		control: forms.ControlTime,
		schema:  localizeSchema(true),
	}
}
