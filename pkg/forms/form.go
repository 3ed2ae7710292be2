package forms

// Form collects constructed controls keyed by machine name while preserving
// attachment order. Attaching under an existing name replaces the control in
// place without disturbing the order.
type Form struct {
	controls map[string]*Control
	order    []string
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{controls: make(map[string]*Control)}
}

// Attach adds or replaces a control under its machine name. Controls with an
// empty name are ignored.
func (f *Form) Attach(ctrl *Control) {
	if ctrl == nil || ctrl.Name == "" {
		return
	}
	if _, exists := f.controls[ctrl.Name]; !exists {
		f.order = append(f.order, ctrl.Name)
	}
	f.controls[ctrl.Name] = ctrl
}

// Control returns the control attached under name.
func (f *Form) Control(name string) (*Control, bool) {
	ctrl, ok := f.controls[name]
	return ctrl, ok
}

// Hide swaps the widget of an attached control for a hidden one. The control
// stays on the form so downstream code can still reference its name. Hiding
// an unattached name is a no-op.
func (f *Form) Hide(name string) {
	if ctrl, ok := f.controls[name]; ok {
		ctrl.Widget = HiddenWidget()
	}
}

// Controls returns the attached controls in attachment order.
func (f *Form) Controls() []*Control {
	out := make([]*Control, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.controls[name])
	}
	return out
}

// Len reports the number of attached controls.
func (f *Form) Len() int {
	return len(f.order)
}
