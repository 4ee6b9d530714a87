package screens

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/clubpro-dev/qistadmin/internal/formspec"
)

// overrideFile lets a deployment relabel screens without a rebuild. Only
// titles and labels can be overridden; structure, kinds and validation stay
// fixed in code.
type overrideFile struct {
	Screens []screenOverride `yaml:"screens"`
}

type screenOverride struct {
	Resource string            `yaml:"resource"`
	Title    string            `yaml:"title,omitempty"`
	Columns  map[string]string `yaml:"columns,omitempty"`
	Fields   map[string]string `yaml:"fields,omitempty"`
}

// ExportYAML dumps the current definitions in override format, ready to be
// edited and loaded back.
func ExportYAML(defs []Definition) ([]byte, error) {
	out := overrideFile{}
	for _, d := range defs {
		so := screenOverride{Resource: d.Resource, Title: d.Title, Columns: map[string]string{}, Fields: map[string]string{}}
		for _, c := range d.Columns {
			so.Columns[c.Key] = c.Label
		}
		for _, f := range d.Fields {
			so.Fields[f.Name()] = f.Label()
		}
		out.Screens = append(out.Screens, so)
	}
	return yaml.Marshal(out)
}

// ApplyYAML returns a copy of defs with the overrides applied. Unknown
// resources are an error; unknown column or field keys are ignored.
func ApplyYAML(defs []Definition, data []byte) ([]Definition, error) {
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	out := make([]Definition, len(defs))
	copy(out, defs)
	for _, so := range file.Screens {
		idx := -1
		for i, d := range out {
			if d.Resource == so.Resource {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown screen: %s", so.Resource)
		}
		d := out[idx]
		if so.Title != "" {
			d.Title = so.Title
		}
		if len(so.Columns) > 0 {
			cols := make([]Column, len(d.Columns))
			copy(cols, d.Columns)
			for i, c := range cols {
				if label, ok := so.Columns[c.Key]; ok && label != "" {
					cols[i].Label = label
				}
			}
			d.Columns = cols
		}
		if len(so.Fields) > 0 {
			fields := make([]formspec.Field, len(d.Fields))
			copy(fields, d.Fields)
			for i, f := range fields {
				label, ok := so.Fields[f.Name()]
				if !ok || label == "" {
					continue
				}
				fields[i] = relabel(f, label)
			}
			d.Fields = fields
		}
		out[idx] = d
	}
	return out, nil
}

// relabel swaps the display label of a field, keeping everything else. The
// switch is exhaustive over the sealed field union.
func relabel(f formspec.Field, label string) formspec.Field {
	switch x := f.(type) {
	case formspec.Text:
		x.FieldLabel = label
		return x
	case formspec.Textarea:
		x.FieldLabel = label
		return x
	case formspec.Switch:
		x.FieldLabel = label
		return x
	case formspec.Select:
		x.FieldLabel = label
		return x
	}
	return f
}
