package fieldkind

import "github.com/goliatone/go-dynfields/pkg/forms"

// attributeKind reads its display value from the owning entity's native
// attributes instead of the dynamic data bag. System, component and subtitle
// fields all mirror something intrinsic to the entity.
type attributeKind struct {
	baseKind
}

func (k *attributeKind) Display(f *BoundField, holder Holder) (string, bool) {
	value, ok := holder.Attribute(f.cfg.Name)
	if !ok || value == nil {
		return "", false
	}
	return stringify(value), true
}

func newSystemKind() Kind {
	return &attributeKind{baseKind{
		name:     "SystemField",
		label:    "System",
		control:  forms.ControlCheckbox,
		system:   true,
		hideData: true,
		schema:   BaseSchema().Merge(nil, "required"),
	}}
}

func newComponentKind() Kind {
	return &attributeKind{baseKind{
		name:     "ComponentField",
		label:    "Component",
		control:  forms.ControlStatic,
		system:   true,
		hideData: true,
		schema:   BaseSchema().Merge(nil, "required"),
	}}
}

func newSubtitleKind() Kind {
	return &attributeKind{baseKind{
		name:    "SubtitleField",
		label:   "Subtitle",
		control: forms.ControlStatic,
		schema:  BaseSchema().Merge(nil, "required", "help_text"),
	}}
}
