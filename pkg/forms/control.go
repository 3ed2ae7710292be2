// Package forms defines the typed control model that field kinds construct
// into. It plays the role a form framework plays for a server-rendered admin:
// controls carry everything a renderer needs (type, label, choices, bounds,
// widget) without this module ever emitting markup itself.
package forms

// ControlType enumerates the underlying input controls kinds can resolve to.
type ControlType string

const (
	ControlText        ControlType = "text"
	ControlTextArea    ControlType = "textarea"
	ControlCheckbox    ControlType = "checkbox"
	ControlRadio       ControlType = "radio"
	ControlSelect      ControlType = "select"
	ControlMultiSelect ControlType = "multiselect"
	ControlNumber      ControlType = "number"
	ControlDate        ControlType = "date"
	ControlDateTime    ControlType = "datetime"
	ControlTime        ControlType = "time"
	ControlEmail       ControlType = "email"
	ControlHidden      ControlType = "hidden"
	ControlStatic      ControlType = "static"
	ControlComposite   ControlType = "composite"
)

// Choice is a (stored value, display label) pair for select-style controls.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Widget describes how a control should be presented when the default
// presentation for its type is not enough. Parts supports composites such as
// the boolean radio + comment input pair.
type Widget struct {
	Kind    ControlType       `json:"kind"`
	Choices []Choice          `json:"choices,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Parts   []Widget          `json:"parts,omitempty"`
}

// Control is a fully constructed input ready to attach to a Form.
type Control struct {
	Name      string            `json:"name"`
	Type      ControlType       `json:"type"`
	Label     string            `json:"label,omitempty"`
	HelpText  string            `json:"helpText,omitempty"`
	Required  bool              `json:"required"`
	Localize  bool              `json:"localize,omitempty"`
	Initial   any               `json:"initial,omitempty"`
	Choices   []Choice          `json:"choices,omitempty"`
	MinValue  *int              `json:"minValue,omitempty"`
	MaxValue  *int              `json:"maxValue,omitempty"`
	MinLength *int              `json:"minLength,omitempty"`
	MaxLength *int              `json:"maxLength,omitempty"`
	Widget    *Widget           `json:"widget,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

// Option mutates a control during construction. Options passed by the caller
// are applied last, so caller overrides win over kind defaults.
type Option func(*Control)

// WithWidget replaces the control's widget.
func WithWidget(widget *Widget) Option {
	return func(c *Control) { c.Widget = widget }
}

// WithChoices replaces the control's choice list.
func WithChoices(choices []Choice) Option {
	return func(c *Control) { c.Choices = choices }
}

// WithInitial replaces the computed initial value.
func WithInitial(initial any) Option {
	return func(c *Control) { c.Initial = initial }
}

// WithAttr sets a single presentation attribute.
func WithAttr(key, value string) Option {
	return func(c *Control) {
		if c.Attrs == nil {
			c.Attrs = make(map[string]string)
		}
		c.Attrs[key] = value
	}
}

// HiddenWidget returns the widget used to suppress an already-attached
// control without removing it from the form.
func HiddenWidget() *Widget {
	return &Widget{Kind: ControlHidden}
}
