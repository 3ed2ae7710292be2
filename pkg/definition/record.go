// Package definition bridges persisted field definitions and the kind
// registry: given a stored record it resolves the kind, merges the option bag
// against the kind's schema, and delegates construction, choice listing and
// display. It also implements the save protocol that assigns machine names
// and system flags.
package definition

// Record is one persisted field definition, scoped to an owning model and a
// site. The machine name is assigned once at first save and never recomputed;
// the option bag is owned exclusively by the record.
type Record struct {
	ID        string         `json:"id" yaml:"id,omitempty"`
	Site      string         `json:"site" yaml:"site"`
	Model     string         `json:"model" yaml:"model"`
	Label     string         `json:"label" yaml:"label"`
	Name      string         `json:"name" yaml:"name,omitempty"`
	FieldType string         `json:"fieldType" yaml:"type"`
	Default   string         `json:"default,omitempty" yaml:"default,omitempty"`
	Required  bool           `json:"required" yaml:"required"`
	Visible   bool           `json:"visible" yaml:"visible"`
	System    bool           `json:"system" yaml:"-"`
	Options   map[string]any `json:"options" yaml:"options,omitempty"`
	Position  int            `json:"position" yaml:"-"`
}
