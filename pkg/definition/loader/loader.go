// Package loader parses admin-authored definition documents (YAML or JSON)
// into records, validating kind keys and option bags before anything reaches
// the store. Labels and help text are scrubbed of markup at this boundary
// since documents may be hand-edited or imported from untrusted exports.
package loader

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dynfields/pkg/definition"
	"github.com/goliatone/go-dynfields/pkg/fieldkind"
)

// Document is one definition file: a group of fields owned by a single
// (site, model) scope.
type Document struct {
	Site   string      `yaml:"site"`
	Model  string      `yaml:"model"`
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec is one field entry in a document. Visible defaults to true when
// omitted.
type FieldSpec struct {
	Label    string         `yaml:"label"`
	Name     string         `yaml:"name,omitempty"`
	Type     string         `yaml:"type"`
	Default  string         `yaml:"default,omitempty"`
	Required bool           `yaml:"required"`
	Visible  *bool          `yaml:"visible,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// Loader validates documents against a kind registry.
type Loader struct {
	registry *fieldkind.Registry
}

// New constructs a loader. A nil registry falls back to the shared default.
func New(registry *fieldkind.Registry) *Loader {
	if registry == nil {
		registry = fieldkind.Default()
	}
	return &Loader{registry: registry}
}

// Parse decodes a document and returns validated records ready for the save
// protocol. The first invalid entry aborts the parse.
func (l *Loader) Parse(data []byte) ([]*definition.Record, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loader: decode document: %w", err)
	}
	if doc.Model == "" {
		return nil, errors.New("loader: document model is required")
	}

	records := make([]*definition.Record, 0, len(doc.Fields))
	for i, spec := range doc.Fields {
		rec, err := l.toRecord(doc, spec)
		if err != nil {
			return nil, fmt.Errorf("loader: field %d (%s): %w", i, spec.Label, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l *Loader) toRecord(doc Document, spec FieldSpec) (*definition.Record, error) {
	label := scrubText(spec.Label)
	if label == "" {
		return nil, errors.New("label is required")
	}

	kind, ok := l.registry.Get(spec.Type)
	if !ok {
		return nil, fmt.Errorf("kind %q is not registered", spec.Type)
	}

	options := normalizeOptions(spec.Options)
	if helpText, ok := options["help_text"].(string); ok {
		options["help_text"] = scrubText(helpText)
	}
	if err := kind.OptionSchema().NewValues().Apply(options); err != nil {
		return nil, err
	}

	visible := true
	if spec.Visible != nil {
		visible = *spec.Visible
	}

	return &definition.Record{
		Site:      doc.Site,
		Model:     doc.Model,
		Label:     label,
		Name:      spec.Name,
		FieldType: spec.Type,
		Default:   spec.Default,
		Required:  spec.Required,
		Visible:   visible,
		Options:   options,
	}, nil
}

// normalizeOptions rewrites legacy option spellings carried over from old
// exports; persisted bags may still use "not_avaliable".
func normalizeOptions(options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for key, value := range options {
		if key == "not_avaliable" {
			key = "not_available"
		}
		out[key] = value
	}
	return out
}
